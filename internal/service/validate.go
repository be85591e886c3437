package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxCommentLen = 200

// Dates are normalized to 20:00, the usual end of a darts evening, instead
// of keeping the moment of entry.
const normalizedHour = 20

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseValue parses a base-10 integer score.
func parseValue(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidValue
	}
	return v, nil
}

// parseComment trims the comment and enforces the length limit.
func parseComment(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) > maxCommentLen {
		return "", ErrCommentTooLong
	}
	return s, nil
}

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date. Validity is checked by rebuilding the date from its
// components and confirming they round-trip exactly, so "2023-02-30"
// is rejected even though it matches the pattern.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])

	dt := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return dt.Year() == y && dt.Month() == time.Month(m) && dt.Day() == d
}

// parseDate validates s and returns the date pinned to the normalized
// evening time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, ErrInvalidDate
	}

	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])
	return time.Date(y, time.Month(m), d, normalizedHour, 0, 0, 0, time.UTC), nil
}
