package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleInvoiceExport() ExportData {
	return ExportData{
		DocType: DocTypeInvoice,
		Header: Header{
			CompanyName:    "My Company Ltd.",
			CompanyAddress: "123 Main St, City, Country",
			DocumentTitle:  "Invoice #0001",
			CustomerInfo:   "John Doe, 456 Another St",
		},
		Columns: DefaultColumns(),
		Rows: []Row{
			{ColProduct: "Chair", ColQuantity: "2", ColPrice: "100", ColRowTotal: "200.00"},
			{ColProduct: "Table", ColQuantity: "1", ColPrice: "300", ColRowTotal: "300.00"},
		},
		FooterLines: []FooterLine{
			{ID: "tax-line", Label: LabelTax, Value: "10.00"},
			{ID: "subtotal-line", Label: LabelSubtotal, Value: "500.00"},
			{ID: "total-line", Label: LabelTotal, Value: "510.00"},
		},
		FooterText:  "<p>Thank you for your business!</p>",
		CreatedDate: "15 Jan 2026",
	}
}

func TestGenerateDocumentExcel_BasicInvoice(t *testing.T) {
	data := sampleInvoiceExport()

	result, err := GenerateDocumentExcel(data)
	if err != nil {
		t.Fatalf("GenerateDocumentExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateDocumentExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Invoice #0001" {
		t.Errorf("expected sheet name 'Invoice #0001', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Invoice #0001" {
		t.Errorf("expected title 'Invoice #0001', got %q", title)
	}
}

func TestGenerateDocumentExcel_OnlyVisibleColumns(t *testing.T) {
	data := sampleInvoiceExport()

	result, err := GenerateDocumentExcel(data)
	if err != nil {
		t.Fatalf("GenerateDocumentExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	// Rows 2-5 are subtitles, row 6 blank, row 7 column header.
	header, _ := f.GetCellValue(sheet, "A7")
	if header != "Product" {
		t.Errorf("first header cell = %q, want 'Product'", header)
	}
	// Invoice preset shows 5 columns; column F must stay empty.
	extra, _ := f.GetCellValue(sheet, "F7")
	if extra != "" {
		t.Errorf("hidden column leaked into header row: %q", extra)
	}

	firstProduct, _ := f.GetCellValue(sheet, "A8")
	if firstProduct != "Chair" {
		t.Errorf("first data cell = %q, want 'Chair'", firstProduct)
	}
}

func TestGenerateDocumentExcel_EmptyRows(t *testing.T) {
	data := sampleInvoiceExport()
	data.Rows = nil

	result, err := GenerateDocumentExcel(data)
	if err != nil {
		t.Fatalf("GenerateDocumentExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateDocumentExcel() returned empty bytes")
	}
}

func TestGenerateDocumentExcel_LongTitle(t *testing.T) {
	data := sampleInvoiceExport()
	data.Header.DocumentTitle = "This is a very long title that exceeds thirty one characters"

	result, err := GenerateDocumentExcel(data)
	if err != nil {
		t.Fatalf("GenerateDocumentExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateDocumentExcel_EmptyTitleFallsBack(t *testing.T) {
	data := sampleInvoiceExport()
	data.Header.DocumentTitle = ""

	result, err := GenerateDocumentExcel(data)
	if err != nil {
		t.Fatalf("GenerateDocumentExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Invoice" {
		t.Errorf("expected fallback sheet name 'Invoice', got %q", sheets[0])
	}
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Invoice #0001", "Invoice #0001"},
		{"forbidden chars", "A/B:C*D", "A-B-C-D"},
		{"empty", "", "Document"},
		{"exactly 31", "0123456789012345678901234567890", "0123456789012345678901234567890"},
		{"over 31", "01234567890123456789012345678901", "0123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeSheetName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeSheetName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
