// Package fields holds the shared cell-level helpers for the tabular record
// sets: sentinel handling, multi-value list parsing, requirement matching and
// date-range overlap. Every table cell that reaches the domain layer has
// already been normalized through this package.
package fields

import (
	"strings"
	"time"
)

// Sentinel marks an empty assignment or date cell. The spreadsheet uses an
// en-dash; plain and em-dash variants are normalized to it on read.
const Sentinel = "–"

// Date formats accepted for project and availability dates, tried in order.
// The trial order is load-bearing: ambiguous dates like 03/04/2025 resolve
// day-first because that format is tried before month-first.
var dateFormats = []string{"2006-01-02", "02/01/2006", "01/02/2006"}

// Normalize trims a raw cell and collapses the empty variants to Sentinel.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	switch s {
	case "", "-", "–", "—":
		return Sentinel
	}
	return s
}

// IsEmpty reports whether a cell carries no value.
func IsEmpty(raw string) bool {
	return Normalize(raw) == Sentinel
}

// ParseList splits a multi-value cell on commas or semicolons, trimming
// whitespace and dropping empty tokens. Sentinel and empty cells yield nil.
func ParseList(raw string) []string {
	if IsEmpty(raw) {
		return nil
	}
	split := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var out []string
	for _, tok := range split {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// HasMatch reports whether the held values satisfy a required multi-value
// cell. An empty requirement imposes nothing and always matches. Otherwise
// the test is a case-insensitive membership check with OR semantics: one
// required token held is enough.
func HasMatch(held []string, required string) bool {
	req := ParseList(required)
	if len(req) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(held))
	for _, h := range held {
		have[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}
	for _, r := range req {
		if _, ok := have[strings.ToLower(strings.TrimSpace(r))]; ok {
			return true
		}
	}
	return false
}

// ParseDate parses a date cell, trying each accepted format in order. The
// second return is false for sentinel, empty or unparseable input.
func ParseDate(raw string) (time.Time, bool) {
	if IsEmpty(raw) {
		return time.Time{}, false
	}
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RangesOverlap reports whether two closed date ranges overlap, boundary
// touching included. If any bound fails to parse the ranges are treated as
// non-overlapping rather than erroring, so bad data never produces a false
// conflict.
func RangesOverlap(startA, endA, startB, endB string) bool {
	a, okA := ParseDate(startA)
	b, okB := ParseDate(endA)
	c, okC := ParseDate(startB)
	d, okD := ParseDate(endB)
	if !okA || !okB || !okC || !okD {
		return false
	}
	return !(b.Before(c) || d.Before(a))
}

// EqualFold compares two cells case-insensitively after trimming.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
