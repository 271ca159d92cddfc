// Package refcode generates booking reference codes and numeric OTPs.
// Randomness comes from an explicit source so callers stay testable and no
// process-wide generator state is involved.
package refcode

import (
	"io"
	"time"

	"tour-booking-api/internal/pkg/errs"
)

const refPrefix = "TRV"

// Digits returns a string of n random decimal digits read from src.
func Digits(src io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes")
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = '0' + b%10
	}
	return string(out), nil
}

// BookingRef builds a reference of the form TRV<6 timestamp digits><4 random
// digits>, e.g. TRV4830217291.
func BookingRef(src io.Reader, now time.Time) (string, error) {
	random, err := Digits(src, 4)
	if err != nil {
		return "", err
	}
	millis := now.UnixMilli() % 1000000
	ts := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		ts[i] = '0' + byte(millis%10)
		millis /= 10
	}
	return refPrefix + string(ts) + random, nil
}
