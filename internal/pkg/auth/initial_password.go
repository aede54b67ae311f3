package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrUnparseableBirthDate is returned when a birth date token cannot be read.
// Bulk importers turn it into a per-row skip instead of failing the batch.
var ErrUnparseableBirthDate = errors.New("unparseable birth date")

var slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// buddhistEraOffset converts a Common Era year to the Buddhist Era.
const buddhistEraOffset = 543

// InitialPassword derives the first-login password from a birth date:
// zero-padded day, zero-padded month, then the last two digits of the
// Buddhist Era year. 22 May 2004 yields "220547". The raw value is hashed
// before storage and never persisted.
func InitialPassword(birthDate time.Time) string {
	beYear := birthDate.Year() + buddhistEraOffset
	return fmt.Sprintf("%02d%02d%02d", birthDate.Day(), int(birthDate.Month()), beYear%100)
}

// InitialPasswordFromToken derives the first-login password from a textual
// birth date, accepting ISO "YYYY-MM-DD" or "D/M/YYYY" tokens.
func InitialPasswordFromToken(token string) (string, error) {
	date, err := ParseBirthDate(token)
	if err != nil {
		return "", err
	}
	return InitialPassword(date), nil
}

// ParseBirthDate parses an ISO "YYYY-MM-DD" or "D/M/YYYY" birth date token.
func ParseBirthDate(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, ErrUnparseableBirthDate
	}

	if m := slashDateRe.FindStringSubmatch(token); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components; reject those
		if date.Day() != day || int(date.Month()) != month || date.Year() != year {
			return time.Time{}, ErrUnparseableBirthDate
		}
		return date, nil
	}

	date, err := time.Parse("2006-01-02", token)
	if err != nil {
		return time.Time{}, ErrUnparseableBirthDate
	}
	return date, nil
}
