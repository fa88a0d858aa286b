package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type faultyWriter struct {
	err error
}

func (fw faultyWriter) Write([]byte) (int, error) {
	return 0, fw.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb1.WriteString("already-here")
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.Len(t, cw.Writers, 2)

	n, err := cw.Write([]byte("a message"))
	require.NoError(t, err)
	assert.Equal(t, len("a message"), n)
	n, err = cw.Write([]byte(" and another"))
	require.NoError(t, err)
	assert.Equal(t, len(" and another"), n)

	assert.Equal(t, "already-herea message and another", sb1.String())
	assert.Equal(t, "a message and another", sb2.String())
}

func TestCombinedWriter_Write_WithErrors(t *testing.T) {
	sb := &strings.Builder{}
	errDisk := errors.New("disk full")
	cw := NewCombinedWriter(faultyWriter{err: errDisk}, sb, shortWriter{})

	n, err := cw.Write([]byte("a message"))
	assert.Zero(t, n)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDisk)
	assert.Len(t, multierr.Errors(err), 2)

	// the healthy writer still got the message
	assert.Equal(t, "a message", sb.String())
}
