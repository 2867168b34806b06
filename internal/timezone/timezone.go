package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Los_Angeles"

var locations sync.Map

func load(tz string) (*time.Location, bool) {
	if tz == "" {
		return nil, false
	}
	if v, ok := locations.Load(tz); ok {
		return v.(*time.Location), true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, false
	}
	locations.Store(tz, loc)
	return loc, true
}

func IsValid(tz string) bool {
	_, ok := load(tz)
	return ok
}

// Location falls back to the studio default for unknown zones, and to UTC
// if even that is missing.
func Location(tz string) *time.Location {
	if loc, ok := load(tz); ok {
		return loc
	}
	if loc, ok := load(DefaultTimezone); ok {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseLocal reads a YYYY-MM-DD date and HH:MM clock time in tz.
func ParseLocal(date, clock, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, Location(tz))
}
