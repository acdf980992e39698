package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDateFormat = errors.New("invalid date format")

const (
	// ISOLayout is the canonical input layout, yyyy-MM-dd.
	ISOLayout = "2006-01-02"

	// DisplayLayout renders dates as "Oct 15 2023". Save records use it as well.
	DisplayLayout = "Jan 2 2006"
)

// Date is a calendar date without a time of day.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day, rejecting days that do not exist (e.g. Feb 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidDateFormat, year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

func dateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// IsZero reports whether d is the zero Date, which todos carry.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date with DisplayLayout.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(DisplayLayout)
}

// DateParser converts free-form text into a Date by trying each layout in order.
type DateParser struct {
	layouts []string
}

// DefaultLayouts are always accepted: the ISO input layout and the display layout,
// so that records written by Serialize parse back.
var DefaultLayouts = []string{ISOLayout, DisplayLayout}

// NewDateParser returns a parser for DefaultLayouts followed by any extra layouts.
func NewDateParser(extra ...string) DateParser {
	layouts := make([]string, 0, len(DefaultLayouts)+len(extra))
	layouts = append(layouts, DefaultLayouts...)
	for _, l := range extra {
		if l = strings.TrimSpace(l); l != "" {
			layouts = append(layouts, l)
		}
	}
	return DateParser{layouts: layouts}
}

// Layouts returns the accepted layouts in the order they are tried.
func (p DateParser) Layouts() []string {
	if len(p.layouts) == 0 {
		return DefaultLayouts
	}
	return p.layouts
}

// Parse returns the date written in text. Layouts that carry a time of day are
// accepted but the time is dropped.
func (p DateParser) Parse(text string) (Date, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Date{}, fmt.Errorf("%w: date is empty", ErrInvalidDateFormat)
	}

	for _, layout := range p.Layouts() {
		if t, err := time.Parse(layout, text); err == nil {
			return dateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q (use yyyy-mm-dd, e.g. 2023-10-15)", ErrInvalidDateFormat, text)
}

// ParseDate parses text with the default layouts.
func ParseDate(text string) (Date, error) {
	return NewDateParser().Parse(text)
}
