package services

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ExportData is the immutable snapshot handed to the PDF and Excel
// renderers. Rows and footer lines are consumed verbatim; only visible
// columns are rendered. The engine guarantees totals reflect the current
// rows at the moment the snapshot is taken.
type ExportData struct {
	DocType     DocType
	Header      Header
	Columns     []Column
	Rows        []Row
	FooterLines []FooterLine
	FooterText  string
	CreatedDate string
}

// VisibleColumns filters the column sequence down to the renderable set,
// preserving order.
func (d ExportData) VisibleColumns() []Column {
	var out []Column
	for _, c := range d.Columns {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// GrandTotal reads the computed Total line back as a number.
func (d ExportData) GrandTotal() float64 {
	if v, ok := FooterLineValue(d.FooterLines, LabelTotal); ok {
		return ParseNumber(v)
	}
	return 0
}

// PlainFooterText strips rich-text markup from the trailer so renderers
// that draw plain text can use it directly.
func (d ExportData) PlainFooterText() string {
	stripped := bluemonday.StrictPolicy().Sanitize(d.FooterText)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// CellText renders a raw cell value for display.
func CellText(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Title returns the document title, falling back to the document type.
func (d ExportData) Title() string {
	if d.Header.DocumentTitle != "" {
		return d.Header.DocumentTitle
	}
	if d.DocType == DocTypePackingSlip {
		return "Packing Slip"
	}
	return "Invoice"
}
