package services

import (
	"strings"

	"github.com/google/uuid"
)

// normalizeLabel lower-cases and trims a label for matching purposes.
// Stored label text keeps its original casing.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// MakeFooterLine constructs a footer line with a fresh unique id.
func MakeFooterLine(label, value string) FooterLine {
	return FooterLine{ID: uuid.NewString(), Label: label, Value: value}
}

// UpsertFooterLine replaces the value of the first line whose normalized
// label matches, or appends a newly constructed line when none does.
// Matching is case-insensitive and ignores surrounding whitespace; on
// update only the value changes, id, position and label casing stay put.
func UpsertFooterLine(lines []FooterLine, label, value string) []FooterLine {
	norm := normalizeLabel(label)
	for i, ln := range lines {
		if normalizeLabel(ln.Label) == norm {
			out := make([]FooterLine, len(lines))
			copy(out, lines)
			out[i].Value = value
			return out
		}
	}
	out := make([]FooterLine, 0, len(lines)+1)
	out = append(out, lines...)
	out = append(out, MakeFooterLine(label, value))
	return out
}

// FooterLineValue returns the value of the first line matching the
// normalized label, or false when no such line exists.
func FooterLineValue(lines []FooterLine, label string) (string, bool) {
	norm := normalizeLabel(label)
	for _, ln := range lines {
		if normalizeLabel(ln.Label) == norm {
			return ln.Value, true
		}
	}
	return "", false
}

// FindFooterLine returns the index of the line with the given id, or -1.
// Lookups by id are how direct user edits address a line; the label is
// only semantic identity for the computed lines.
func FindFooterLine(lines []FooterLine, id string) int {
	for i, ln := range lines {
		if ln.ID == id {
			return i
		}
	}
	return -1
}
