// Package services implements the document template engine: numeric
// coercion, row total calculation, footer aggregation, presets and the
// PDF/Excel renderers.
package services

// DocType identifies which preset a document was created from.
type DocType string

const (
	DocTypeInvoice     DocType = "invoice"
	DocTypePackingSlip DocType = "packing_slip"
)

// Column is a named, orderable, independently hideable field definition
// shared by all rows. Identity is ID; label and visibility are mutable.
type Column struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Visible  bool   `json:"visible"`
	ReadOnly bool   `json:"readOnly,omitempty"`
}

// FooterLine is one label/value pair in the document summary block,
// either user-authored or system-computed.
type FooterLine struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row maps column ids to raw cell values as typed by the user, plus the
// derived rowTotal cell which is always system-written. Values stay
// free-form text so in-progress input never blocks typing; they are
// coerced at calculation time.
type Row map[string]any

// Header holds the free-form document header fields.
type Header struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	DocumentTitle  string `json:"documentTitle"`
	CustomerInfo   string `json:"customerInfo"`
}

// Document is the aggregate the mutation operations work on: header,
// ordered columns, ordered rows, ordered footer lines and the free-form
// trailer text.
type Document struct {
	DocType     DocType      `json:"docType"`
	Header      Header       `json:"header"`
	Columns     []Column     `json:"columns"`
	Rows        []Row        `json:"rows"`
	TableFooter []FooterLine `json:"tableFooter"`
	FooterText  string       `json:"footerText"`
}
