package analytics

import (
	"strings"
	"time"
)

// saleDateLayouts covers what the API emits for saleDate: OffsetDateTime,
// LocalDateTime and plain dates.
var saleDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseSaleDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range saleDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// latestDate tracks the most recent sale date seen. Parsed dates are compared
// by instant; an unparseable date only wins over other unparseable dates.
type latestDate struct {
	raw    string
	at     time.Time
	parsed bool
	set    bool
}

func (l *latestDate) observe(raw string) {
	at, ok := parseSaleDate(raw)
	switch {
	case !l.set:
	case ok && !l.parsed:
	case ok && l.parsed && at.After(l.at):
	case !ok && !l.parsed && raw > l.raw:
	default:
		return
	}
	l.raw, l.at, l.parsed, l.set = raw, at, ok, true
}

func (l latestDate) String() string {
	return l.raw
}
