package services

import (
	"errors"
	"testing"
	"time"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

func TestHasEnoughTAs(t *testing.T) {
	tests := []struct {
		name     string
		students int
		ratio    int
		tas      int
		want     bool
		wantErr  error
	}{
		{name: "below need", students: 10, ratio: 5, tas: 2, want: false},
		{name: "above need", students: 10, ratio: 5, tas: 3, want: true},
		{name: "exactly at need", students: 20, ratio: 4, tas: 5, want: false},
		{name: "truncated division", students: 9, ratio: 5, tas: 2, want: true},
		{name: "no students", students: 0, ratio: 5, tas: 0, want: false},
		{name: "no students with one ta", students: 0, ratio: 5, tas: 1, want: true},
		{name: "zero ratio", students: 10, ratio: 0, tas: 2, wantErr: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{
				NumberOfStudents: tt.students,
				StudentTaRatio:   tt.ratio,
				NumberOfTas:      tt.tas,
			}

			got, err := HasEnoughTAs(course)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("HasEnoughTAs() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HasEnoughTAs() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasEnoughTAs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name      string
		startDate *time.Time
		want      bool
	}{
		{name: "no start date never closes", startDate: nil, want: false},
		{name: "start four weeks out", startDate: date(2026, time.April, 7), want: false},
		{name: "start two weeks out", startDate: date(2026, time.March, 24), want: true},
		// Deadline lands exactly on today: not passed until tomorrow.
		{name: "deadline is today", startDate: date(2026, time.March, 31), want: false},
		{name: "deadline was yesterday", startDate: date(2026, time.March, 30), want: true},
		{name: "start already behind us", startDate: date(2026, time.January, 5), want: true},
		{name: "deadline next year", startDate: date(2027, time.January, 10), want: false},
		{name: "deadline last year", startDate: date(2025, time.June, 1), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{StartDate: tt.startDate}
			if got := DeadlinePassed(course, now); got != tt.want {
				t.Errorf("DeadlinePassed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeadlinePassedIgnoresTimeOfDay(t *testing.T) {
	// Start date at 00:01; deadline day is the same calendar day whatever
	// the clock says.
	start := time.Date(2026, time.March, 31, 0, 1, 0, 0, time.UTC)
	course := &models.Course{StartDate: &start}

	lateOnDeadlineDay := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	if DeadlinePassed(course, lateOnDeadlineDay) {
		t.Error("DeadlinePassed() = true on the deadline day itself")
	}

	earlyNextDay := time.Date(2026, time.March, 11, 0, 0, 1, 0, time.UTC)
	if !DeadlinePassed(course, earlyNextDay) {
		t.Error("DeadlinePassed() = false the day after the deadline")
	}
}
