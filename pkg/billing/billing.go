// Package billing holds the pure pricing rules: elapsed play time to a
// suggested charge, and a (suggested, paid) pair to a payment classification.
// Both functions are side-effect free; time is always an explicit argument.
package billing

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidArgument is returned when a rate, amount, or time span is negative.
var ErrInvalidArgument = errors.New("invalid argument")

// Classification is the outcome of comparing what was paid to what was owed.
type Classification string

const (
	FULL    Classification = "full"
	PARTIAL Classification = "partial"
	NONE    Classification = "none"
)

// SuggestedCost converts elapsed wall-clock time into a charge. Fractional
// hours count proportionally: cost scales continuously with time played, not
// by whole-hour blocks. The result is rounded to a whole currency unit.
func SuggestedCost(startTime, now time.Time, hourlyRate float64) (int64, error) {
	if hourlyRate < 0 {
		return 0, ErrInvalidArgument
	}
	elapsed := now.Sub(startTime)
	if elapsed < 0 {
		return 0, ErrInvalidArgument
	}
	return int64(math.Round(elapsed.Hours() * hourlyRate)), nil
}

// ClassifyPayment buckets a payment against the suggested charge: NONE when
// nothing was paid, FULL when the charge is covered, PARTIAL in between.
func ClassifyPayment(suggestedAmount, paidAmount int64) (Classification, error) {
	if suggestedAmount < 0 || paidAmount < 0 {
		return "", ErrInvalidArgument
	}
	switch {
	case paidAmount == 0:
		return NONE, nil
	case paidAmount < suggestedAmount:
		return PARTIAL, nil
	default:
		return FULL, nil
	}
}
