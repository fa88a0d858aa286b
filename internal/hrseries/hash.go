package hrseries

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/minio/highwayhash"
)

// hashKey must stay stable, changing it invalidates every stored content hash.
var hashKey = []byte("hrload-series-content-hash-key!!")

// ContentHash digests the series in order. Equal series always give
// the same hash and reordering the samples changes it. The salt values are
// digested ahead of the samples, for inputs the result depends on besides
// the series itself.
func ContentHash(series Series, salt ...int64) (string, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", fmt.Errorf("create highwayhash: %w", err)
	}

	buf := make([]byte, 16)
	for _, v := range salt {
		binary.LittleEndian.PutUint64(buf[:8], uint64(v))
		_, _ = h.Write(buf[:8])
	}
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:8], uint64(s.Timestamp))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(s.HeartRate)))
		// hash.Hash never returns an error on Write
		_, _ = h.Write(buf)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// MustContentHash is ContentHash for callers that already know the key is valid.
func MustContentHash(series Series, salt ...int64) string {
	sum, err := ContentHash(series, salt...)
	if err != nil {
		panic(err)
	}
	return sum
}
