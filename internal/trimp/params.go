package trimp

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when the heart rate reserve is not positive.
var ErrInvalidParams = errors.New("invalid heart rate parameters")

const (
	DefaultRestingHR = 48
	DefaultMaxHR     = 167
)

// Params are the user's heart rate parameters.
type Params struct {
	RestingHR int `json:"restingHr"`
	MaxHR     int `json:"maxHr"`
}

func DefaultParams() Params {
	return Params{RestingHR: DefaultRestingHR, MaxHR: DefaultMaxHR}
}

// Validate rejects a resting heart rate at or above the max.
func (p Params) Validate() error {
	if p.MaxHR <= p.RestingHR {
		return fmt.Errorf("%w: resting %d, max %d", ErrInvalidParams, p.RestingHR, p.MaxHR)
	}
	return nil
}

func (p Params) Reserve() int {
	return p.MaxHR - p.RestingHR
}

// ReserveRatio is the normalized intensity of hr between resting and max.
func (p Params) ReserveRatio(hr int) float64 {
	if hr <= p.RestingHR {
		return 0
	}
	return float64(hr-p.RestingHR) / float64(p.Reserve())
}
