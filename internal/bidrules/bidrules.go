// Package bidrules holds the stateless date and amount rules shared by the
// buyer and bid services.
package bidrules

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// BidEndDateLayout documents the seller service's date format (dd-MM-yyyy).
const BidEndDateLayout = "02-01-2006"

var (
	ErrBlankAmount      = errors.New("amount is blank")
	ErrNonNumericAmount = errors.New("amount is not numeric")
)

// day-month-year, each as a run of digits; trailing text is ignored.
var bidEndDateRe = regexp.MustCompile(`^(\d{1,9})-(\d{1,9})-(\d{1,9})`)

// ParseBidEndDate parses a dd-MM-yyyy date leniently: out of range components
// roll over (32-01-2030 is 01-02-2030). ok is false for blank or unparsable
// text, which callers treat as "no date".
func ParseBidEndDate(s string, loc *time.Location) (t time.Time, ok bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	m := bidEndDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// StripTime truncates t to midnight in its own location.
func StripTime(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsFutureDate reports whether target falls on a later calendar day than
// source. A zero target is never in the future.
func IsFutureDate(source, target time.Time) bool {
	if target.IsZero() {
		return false
	}
	return StripTime(source).Before(StripTime(target.In(source.Location())))
}

// BidWindowOpen reports whether a bid may still be placed or amended on now
// for a product closing on bidEndDate.
func BidWindowOpen(now time.Time, bidEndDate string) bool {
	end, ok := ParseBidEndDate(bidEndDate, now.Location())
	if !ok {
		return false
	}
	return IsFutureDate(now, end)
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseAmount converts a digit-only amount to its numeric value.
func ParseAmount(s string) (uint64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, ErrBlankAmount
	}
	if !IsDigits(s) {
		return 0, ErrNonNumericAmount
	}
	return strconv.ParseUint(s, 10, 64)
}
