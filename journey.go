package journeyclock

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyJourney is returned when a journey does not last any time.
var ErrEmptyJourney = errors.New("journeyclock: journey duration must be positive")

// Journey is the interval [Start, End] over which the whole scroll text
// passes across the screen exactly once.
type Journey struct {
	Start time.Time
	End   time.Time
}

// JourneyMode selects how the journey is anchored at startup.
type JourneyMode int

const (
	// StartNow keeps the nominal duration but starts the journey at startup.
	StartNow JourneyMode = iota
	// Calendar uses the nominal calendar dates.
	Calendar
)

// String returns the configuration name of the mode.
func (m JourneyMode) String() string {
	switch m {
	case StartNow:
		return "now"
	case Calendar:
		return "calendar"
	}
	return fmt.Sprintf("JourneyMode(%d)", int(m))
}

// ParseJourneyMode is the inverse of JourneyMode.String.
func ParseJourneyMode(s string) (JourneyMode, error) {
	switch s {
	case "now":
		return StartNow, nil
	case "calendar":
		return Calendar, nil
	}
	return 0, fmt.Errorf("journeyclock: unknown journey mode %q", s)
}

// NominalJourney runs from Sep 23 08:00 of now's year to Mar 25 20:00 of
// the following year, in now's location.
func NominalJourney(now time.Time) Journey {
	return nominal(now.Year(), now.Location())
}

// StartNowJourney starts at now and lasts as long as the nominal journey
// measured on the wall clock, ignoring any daylight saving change in
// between.
func StartNowJourney(now time.Time) Journey {
	n := nominal(now.Year(), time.UTC)
	return Journey{Start: now, End: now.Add(n.Duration())}
}

func nominal(year int, loc *time.Location) Journey {
	return Journey{
		Start: time.Date(year, time.September, 23, 8, 0, 0, 0, loc),
		End:   time.Date(year+1, time.March, 25, 20, 0, 0, 0, loc),
	}
}

// NewJourney anchors a journey according to mode.
func NewJourney(mode JourneyMode, now time.Time) (Journey, error) {
	var j Journey
	switch mode {
	case StartNow:
		j = StartNowJourney(now)
	case Calendar:
		j = NominalJourney(now)
	default:
		return Journey{}, fmt.Errorf("journeyclock: unknown journey mode %v", mode)
	}
	if err := j.Validate(); err != nil {
		return Journey{}, err
	}
	return j, nil
}

// Duration returns the length of the journey.
func (j Journey) Duration() time.Duration {
	return j.End.Sub(j.Start)
}

// Validate reports ErrEmptyJourney for journeys that do not move forward.
func (j Journey) Validate() error {
	if j.Duration() <= 0 {
		return ErrEmptyJourney
	}
	return nil
}

// Contains reports whether t lies in the closed interval [Start, End].
func (j Journey) Contains(t time.Time) bool {
	return !t.Before(j.Start) && !t.After(j.End)
}

// Progress returns the elapsed fraction of the journey at t. It is only
// meaningful while Contains(t).
func (j Journey) Progress(t time.Time) float64 {
	return t.Sub(j.Start).Seconds() / j.Duration().Seconds()
}
