// Package codec ships ready-made transforms and formatters for common wire
// representations: timestamps, URLs, and durations.
package codec

import (
	"errors"
	"net/url"
	"time"

	unbox "github.com/reoring/unbox"
)

// RFC3339 returns a Formatter parsing RFC3339 timestamps. RFC3339Nano input is
// accepted as well (trailing zeros optional).
func RFC3339() unbox.Formatter[time.Time] {
	return timeFormatter{layouts: []string{time.RFC3339Nano, time.RFC3339}}
}

// TimeLayout returns a Formatter parsing timestamps with the given layout,
// e.g. "2006-01-02" for date-only fields.
func TimeLayout(layout string) unbox.Formatter[time.Time] {
	return timeFormatter{layouts: []string{layout}}
}

// TimeInLocation behaves like TimeLayout but interprets zone-less timestamps
// in loc instead of UTC. The location typically travels through the decode
// context.
func TimeInLocation(layout string, loc *time.Location) unbox.Formatter[time.Time] {
	return timeFormatter{layouts: []string{layout}, loc: loc}
}

type timeFormatter struct {
	layouts []string
	loc     *time.Location
}

func (f timeFormatter) Parse(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range f.layouts {
		var t time.Time
		var err error
		if f.loc != nil {
			t, err = time.ParseInLocation(layout, raw, f.loc)
		} else {
			t, err = time.Parse(layout, raw)
		}
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// URL returns a by-transform producing *url.URL from raw string values.
// Empty strings are rejected.
func URL() unbox.Transform[*url.URL] {
	return unbox.From(func(s string) (*url.URL, error) {
		if s == "" {
			return nil, errors.New("codec: empty URL string")
		}
		return url.Parse(s)
	})
}

// Duration returns a by-transform parsing Go duration strings ("1h30m").
func Duration() unbox.Transform[time.Duration] {
	return unbox.From(time.ParseDuration)
}
