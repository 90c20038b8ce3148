package journeyclock

import (
	"errors"
	"testing"
	"time"
)

func TestNominalJourney(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	j := NominalJourney(now)

	if want := time.Date(2025, time.September, 23, 8, 0, 0, 0, time.UTC); !j.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", j.Start, want)
	}
	if want := time.Date(2026, time.March, 25, 20, 0, 0, 0, time.UTC); !j.End.Equal(want) {
		t.Errorf("End = %v, want %v", j.End, want)
	}
}

func TestStartNowJourney(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"common year", time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC), (183*24 + 12) * time.Hour},
		{"leap february", time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC), (184*24 + 12) * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := StartNowJourney(tt.now)
			if !j.Start.Equal(tt.now) {
				t.Errorf("Start = %v, want %v", j.Start, tt.now)
			}
			if got := j.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartNowJourneyIgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, loc)
	if got, want := StartNowJourney(now).Duration(), (183*24+12)*time.Hour; got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
}

func TestNewJourney(t *testing.T) {
	now := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	j, err := NewJourney(StartNow, now)
	if err != nil {
		t.Fatalf("NewJourney(StartNow) error = %v", err)
	}
	if !j.Start.Equal(now) {
		t.Errorf("StartNow journey starts at %v, want %v", j.Start, now)
	}

	j, err = NewJourney(Calendar, now)
	if err != nil {
		t.Fatalf("NewJourney(Calendar) error = %v", err)
	}
	if j != NominalJourney(now) {
		t.Errorf("Calendar journey = %+v, want the nominal one", j)
	}

	if _, err := NewJourney(JourneyMode(7), now); err == nil {
		t.Error("NewJourney with an unknown mode should fail")
	}
}

func TestJourneyValidate(t *testing.T) {
	if err := testJourney(time.Second).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := testJourney(0).Validate(); !errors.Is(err, ErrEmptyJourney) {
		t.Errorf("Validate() = %v, want ErrEmptyJourney", err)
	}
}

func TestJourneyContains(t *testing.T) {
	j := testJourney(time.Hour)
	tests := []struct {
		t    time.Time
		want bool
	}{
		{j.Start.Add(-time.Nanosecond), false},
		{j.Start, true},
		{j.Start.Add(30 * time.Minute), true},
		{j.End, true},
		{j.End.Add(time.Nanosecond), false},
	}
	for _, tt := range tests {
		if got := j.Contains(tt.t); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestJourneyProgress(t *testing.T) {
	j := testJourney(4 * time.Hour)
	if got := j.Progress(j.Start.Add(time.Hour)); got != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", got)
	}
	if got := j.Progress(j.Start); got != 0 {
		t.Errorf("Progress() at start = %v, want 0", got)
	}
}

func TestJourneyMode(t *testing.T) {
	for _, m := range []JourneyMode{StartNow, Calendar} {
		got, err := ParseJourneyMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseJourneyMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseJourneyMode("tomorrow"); err == nil {
		t.Error("ParseJourneyMode(\"tomorrow\") should fail")
	}
}
