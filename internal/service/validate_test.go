package service

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-03-15", true},
		{"2024-02-29", true}, // leap year
		{"2000-01-01", true},
		{"2023-02-29", false},
		{"2023-02-30", false},
		{"2023-13-01", false},
		{"2024-00-10", false},
		{"2024-01-00", false},
		{"23-1-1", false},
		{"2024-3-15", false},
		{"2024/03/15", false},
		{"15.03.2024", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidDate(tt.in); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateNormalizesToEvening(t *testing.T) {
	got, err := parseDate("2024-03-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}

	want := time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := parseDate("2023-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseComment(t *testing.T) {
	if _, err := parseComment(strings.Repeat("x", 200)); err != nil {
		t.Errorf("200 characters should be accepted, got %v", err)
	}

	if _, err := parseComment(strings.Repeat("x", 201)); !errors.Is(err, ErrCommentTooLong) {
		t.Errorf("201 characters should be rejected, got %v", err)
	}

	got, err := parseComment("  great shot  ")
	if err != nil {
		t.Fatalf("parseComment: %v", err)
	}
	if got != "great shot" {
		t.Errorf("expected trimmed comment, got %q", got)
	}

	if _, err := parseComment(""); err != nil {
		t.Errorf("empty comment is optional, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	v, err := parseValue("121")
	if err != nil || v != 121 {
		t.Errorf("parseValue(121) = %d, %v", v, err)
	}

	if v, err := parseValue(" 42 "); err != nil || v != 42 {
		t.Errorf("parseValue with spaces = %d, %v", v, err)
	}

	for _, in := range []string{"abc", "12.5", "", "12a"} {
		if _, err := parseValue(in); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("parseValue(%q): expected ErrInvalidValue, got %v", in, err)
		}
	}
}
