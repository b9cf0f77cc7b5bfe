package utils

import (
	"testing"
	"time"
)

// TestDayCount checks the inclusive day arithmetic the planner relies on.
func TestDayCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", day(10), day(10), 1},
		{"weekend", day(12), day(13), 2},
		{"week", day(1), day(7), 7},
		{"clock ignored", day(10).Add(23 * time.Hour), day(11).Add(time.Minute), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayCount(tc.start, tc.end); got != tc.want {
				t.Fatalf("DayCount() = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestFormatRFC3339 checks zero-time handling.
func TestFormatRFC3339(t *testing.T) {
	if got := FormatRFC3339(time.Time{}); got != "" {
		t.Fatalf("zero time formatted as %q", got)
	}
	at := time.Date(2026, 9, 10, 15, 4, 5, 0, time.UTC)
	if got := FormatRFC3339(at); got != "2026-09-10T15:04:05Z" {
		t.Fatalf("FormatRFC3339() = %q", got)
	}
}

// TestTokenRoundTrip checks that issued claims validate unchanged and that a
// tampered token is rejected.
func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := CreateToken("u1", "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ada@example.com" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Fatalf("tampered token accepted")
	}
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatalf("garbage token accepted")
	}

	// A token signed under a different key must not validate.
	SetJWTSecret("rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("token validated across a key change")
	}
}
