// file: models/visa_test.go
package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStatusAt(t *testing.T) {
	today := day(2026, 6, 1)

	cases := []struct {
		name   string
		issued *time.Time
		want   VisaStatus
	}{
		{"nil issued date", nil, VisaStatusNotAvailable},
		{"issued today", ptr(day(2026, 6, 1)), VisaStatusAvailable},
		{"issued 364 days ago", ptr(day(2025, 6, 2)), VisaStatusAvailable},
		{"issued exactly 365 days ago", ptr(day(2025, 6, 1)), VisaStatusAvailable},
		{"issued 366 days ago", ptr(day(2025, 5, 31)), VisaStatusExpired},
		{"issued two years ago", ptr(day(2024, 6, 1)), VisaStatusExpired},
	}
	for _, tc := range cases {
		if got := ComputeStatusAt(tc.issued, today); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestMedicalVisaIsValidAt(t *testing.T) {
	today := day(2026, 6, 1)

	cases := []struct {
		name   string
		issued *time.Time
		want   bool
	}{
		{"nil issued date", nil, false},
		{"issued 100 days ago", ptr(today.AddDate(0, 0, -100)), true},
		{"issued exactly 180 days ago", ptr(today.AddDate(0, 0, -180)), true},
		{"issued 181 days ago", ptr(today.AddDate(0, 0, -181)), false},
		{"issued 200 days ago", ptr(today.AddDate(0, 0, -200)), false},
	}
	for _, tc := range cases {
		v := MedicalVisa{IssuedDate: tc.issued}
		if got := v.IsValidAt(today); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
