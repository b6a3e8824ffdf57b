package services

import "testing"

func TestParseDocType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expect  DocType
		wantErr bool
	}{
		{"invoice", "invoice", DocTypeInvoice, false},
		{"packing_slip", "packing_slip", DocTypePackingSlip, false},
		{"packing-slip alias", "packing-slip", DocTypePackingSlip, false},
		{"packingSlip alias", "packingSlip", DocTypePackingSlip, false},
		{"unknown", "receipt", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDocType(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDocType(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expect {
				t.Errorf("ParseDocType(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestNewDocument_InvoicePreset(t *testing.T) {
	doc := NewDocument(DocTypeInvoice)

	if doc.DocType != DocTypeInvoice {
		t.Errorf("docType = %q, want invoice", doc.DocType)
	}
	if doc.Header.DocumentTitle != "Invoice #0001" {
		t.Errorf("title = %q, want Invoice #0001", doc.Header.DocumentTitle)
	}
	if len(doc.Rows) != 1 {
		t.Fatalf("expected 1 blank row, got %d", len(doc.Rows))
	}

	for _, id := range []string{ColProduct, ColDescription, ColQuantity, ColPrice, ColRowTotal} {
		if !ColumnVisible(doc.Columns, id) {
			t.Errorf("expected column %q visible", id)
		}
	}
	for _, id := range []string{ColPackages, ColUnitsPerPackage, ColUnitPrice, ColDiscount} {
		if ColumnVisible(doc.Columns, id) {
			t.Errorf("expected column %q hidden", id)
		}
	}

	if _, ok := FooterLineValue(doc.TableFooter, LabelTotalItems); ok {
		t.Error("invoice preset should not carry a Total Items line")
	}
	if doc.FooterText != "Thank you for your business!" {
		t.Errorf("footerText = %q", doc.FooterText)
	}
}

func TestNewDocument_PackingSlipPreset(t *testing.T) {
	doc := NewDocument(DocTypePackingSlip)

	if doc.Header.DocumentTitle != "Packing Slip #2001" {
		t.Errorf("title = %q, want Packing Slip #2001", doc.Header.DocumentTitle)
	}

	for _, id := range []string{ColPackages, ColUnitsPerPackage, ColUnitPrice} {
		if !ColumnVisible(doc.Columns, id) {
			t.Errorf("expected column %q visible", id)
		}
	}
	for _, id := range []string{ColQuantity, ColPrice} {
		if ColumnVisible(doc.Columns, id) {
			t.Errorf("expected column %q hidden", id)
		}
	}

	if v, ok := FooterLineValue(doc.TableFooter, LabelTotalItems); !ok || v != "0" {
		t.Errorf("Total Items = %q, %v; want 0, true", v, ok)
	}
	if doc.FooterText != "Handle with care" {
		t.Errorf("footerText = %q", doc.FooterText)
	}
}

func TestNewDocument_RowTotalReadOnly(t *testing.T) {
	doc := NewDocument(DocTypeInvoice)
	idx := FindColumn(doc.Columns, ColRowTotal)
	if idx < 0 {
		t.Fatal("rowTotal column missing")
	}
	if !doc.Columns[idx].ReadOnly {
		t.Error("rowTotal column should be read-only")
	}
	for _, c := range doc.Columns {
		if c.ID != ColRowTotal && c.ReadOnly {
			t.Errorf("column %q unexpectedly read-only", c.ID)
		}
	}
}

func TestBlankRow(t *testing.T) {
	row := BlankRow()
	if row[ColQuantity] != "1" {
		t.Errorf("quantity = %v, want 1", row[ColQuantity])
	}
	if row[ColPrice] != "0" {
		t.Errorf("price = %v, want 0", row[ColPrice])
	}
	if row[ColRowTotal] != "0.00" {
		t.Errorf("rowTotal = %v, want 0.00", row[ColRowTotal])
	}
}
