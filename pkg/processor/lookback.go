package processor

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var startDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// LookbackStart resolves the start of the sync window in UTC. An explicit start
// date wins when it parses, otherwise the window is LookbackDays back from now.
func (p *Processor) LookbackStart(ctx context.Context) time.Time {
	fallback := p.cfg.Now().UTC().AddDate(0, 0, -p.cfg.LookbackDays)

	if p.cfg.StartDate == "" {
		return fallback
	}

	parsed, err := ParseStartDate(p.cfg.StartDate)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Time("fallback", fallback).Msg("ignoring start date")
		return fallback
	}

	return parsed
}

// ParseStartDate accepts ISO-8601 timestamps and plain dates. Values without a
// zone are read as UTC.
func ParseStartDate(value string) (time.Time, error) {
	for _, layout := range startDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, errors.Newf("unsupported start date %q", value)
}
