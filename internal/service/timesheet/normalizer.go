package timesheet

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/validator"
)

// RawEvent is a badge record as delivered by upstream feeds. Older badge
// firmware emits lowerCamel field names while the desktop export uses
// UpperCamel; both spellings are accepted here and mapped to one canonical
// shape before any accounting runs.
type RawEvent struct {
	BadgedAt string
	UserID   string
}

func (e *RawEvent) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	pick := func(keys ...string) string {
		for _, key := range keys {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
		}
		return ""
	}

	e.BadgedAt = pick("badgedAt", "BadgedAt")
	e.UserID = pick("userId", "UserId", "UserID")
	return nil
}

// DecodeEvents parses a raw badge payload into events. Records whose
// timestamp cannot be parsed are skipped rather than failing the batch.
func DecodeEvents(data []byte) ([]badge.Event, error) {
	var raw []RawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	events := make([]badge.Event, 0, len(raw))
	for _, r := range raw {
		at, valid := validator.IsValidDateTime(r.BadgedAt)
		if !valid {
			continue
		}
		events = append(events, badge.Event{
			UserID:   r.UserID,
			BadgedAt: at,
		})
	}
	return events, nil
}

// DayKey formats an instant as the local calendar date used to group
// punches. Two events on the same local day group together regardless of
// the timezone offsets their timestamps carried on the wire.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// GroupByDay partitions events into local calendar days, each day's
// punches sorted ascending by instant. Equal instants keep input order.
func GroupByDay(events []badge.Event, loc *time.Location) map[string][]badge.Event {
	byDay := make(map[string][]badge.Event)
	for _, ev := range events {
		key := DayKey(ev.BadgedAt, loc)
		byDay[key] = append(byDay[key], ev)
	}

	for _, punches := range byDay {
		sort.SliceStable(punches, func(i, j int) bool {
			return punches[i].BadgedAt.Before(punches[j].BadgedAt)
		})
	}
	return byDay
}
