package services

import "fmt"

// ParseDocType maps the accepted spellings of a document type to its
// canonical value.
func ParseDocType(s string) (DocType, error) {
	switch s {
	case "invoice":
		return DocTypeInvoice, nil
	case "packing_slip", "packing-slip", "packingSlip":
		return DocTypePackingSlip, nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// DefaultColumns returns the fixed column set shared by every preset,
// with the invoice-style visibilities. Presets differ only in which
// columns start visible.
func DefaultColumns() []Column {
	return []Column{
		{ID: ColProduct, Label: "Product", Visible: true},
		{ID: ColDescription, Label: "Description", Visible: true},
		{ID: ColQuantity, Label: "Quantity", Visible: true},
		{ID: ColPrice, Label: "Price", Visible: true},
		{ID: ColPackages, Label: "Packages", Visible: false},
		{ID: ColUnitsPerPackage, Label: "Units/Package", Visible: false},
		{ID: ColUnitPrice, Label: "Unit Price", Visible: false},
		{ID: ColRowTotal, Label: "Total", Visible: true, ReadOnly: true},
		{ID: ColDiscount, Label: "Discount", Visible: false},
	}
}

func defaultFooterLines() []FooterLine {
	return []FooterLine{
		{ID: "tax-line", Label: LabelTax, Value: "10.00"},
		{ID: "subtotal-line", Label: LabelSubtotal, Value: "300.00"},
		{ID: "total-line", Label: LabelTotal, Value: "310.00"},
	}
}

// BlankRow returns a fresh row with the quantity-formula starting values.
func BlankRow() Row {
	return Row{
		ColProduct:         "",
		ColDescription:     "",
		ColQuantity:        "1",
		ColPrice:           "0",
		ColPackages:        "0",
		ColUnitsPerPackage: "0",
		ColUnitPrice:       "0",
		ColDiscount:        "0",
		ColRowTotal:        "0.00",
	}
}

// NewDocument builds a document from the named preset. Selecting a preset
// is a hard reset, not a merge: header, columns and footer lines come
// fresh from the preset and the row set is a single blank row.
func NewDocument(docType DocType) Document {
	doc := Document{
		DocType:     docType,
		Columns:     DefaultColumns(),
		TableFooter: defaultFooterLines(),
		Rows:        []Row{BlankRow()},
	}

	switch docType {
	case DocTypePackingSlip:
		doc.Header = Header{
			CompanyName:    "My Company Ltd.",
			CompanyAddress: "123 Main St, City, Country",
			DocumentTitle:  "Packing Slip #2001",
			CustomerInfo:   "Warehouse A, City",
		}
		for i := range doc.Columns {
			switch doc.Columns[i].ID {
			case ColPackages, ColUnitsPerPackage, ColUnitPrice:
				doc.Columns[i].Visible = true
			case ColQuantity, ColPrice:
				doc.Columns[i].Visible = false
			}
		}
		doc.TableFooter = append(doc.TableFooter,
			FooterLine{ID: "total-items", Label: LabelTotalItems, Value: "0"})
		doc.FooterText = "Handle with care"
	default:
		doc.Header = Header{
			CompanyName:    "My Company Ltd.",
			CompanyAddress: "123 Main St, City, Country",
			DocumentTitle:  "Invoice #0001",
			CustomerInfo:   "John Doe, 456 Another St",
		}
		doc.FooterText = "Thank you for your business!"
	}

	return doc
}
