package services

import (
	"fmt"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
)

// resolveWindow resolves a list endpoint's date filter and parses the bounds.
// Parse failures can only come from custom caller-supplied bounds, which the
// resolver passes through verbatim.
func resolveWindow(filterType, startDate, endDate string, now time.Time, defaultDays int) (time.Time, time.Time, error) {
	fromStr, toStr := daterange.Resolve(filterType, startDate, endDate, now, defaultDays)

	from, err := time.Parse(daterange.DateFormat, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, fromStr)
	}
	to, err := time.Parse(daterange.DateFormat, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, toStr)
	}
	return from, to, nil
}
