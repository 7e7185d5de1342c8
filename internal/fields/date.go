package fields

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Precision states how much of a Date was actually supplied by the tag.
type Precision int

const (
	// PrecisionYear means only a year was given; month and day are padding.
	PrecisionYear Precision = iota
	// PrecisionFull means a complete calendar date was given.
	PrecisionFull
)

// Date is a calendar date annotated with the precision of its source value.
// A bare "1999" produces {1999, 1, 1, PrecisionYear}; dependent month/day
// fields only populate when the precision is full.
type Date struct {
	Year      int
	Month     int
	Day       int
	Precision Precision
}

// Time returns the plain calendar date with the precision annotation
// stripped, which is the form stored on the final record.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.Precision == PrecisionYear {
		return strconv.Itoa(d.Year)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// dateLayouts are tried in order when a tag value is not a bare year.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01",
	"2006/01/02",
	"02.01.2006",
}

func parseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if year, err := strconv.Atoi(trimmed); err == nil {
		return Date{Year: year, Month: 1, Day: 1, Precision: PrecisionYear}, nil
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return Date{
			Year:      parsed.Year(),
			Month:     int(parsed.Month()),
			Day:       parsed.Day(),
			Precision: PrecisionFull,
		}, nil
	}
	return Date{}, fmt.Errorf("unrecognized date %q", value)
}
