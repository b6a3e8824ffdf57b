package services

// Labels of the system-computed footer lines. The aggregation pass
// upserts their values on every recalculation; Tax stays user-editable
// and is only read.
const (
	LabelSubtotal   = "Subtotal"
	LabelTax        = "Tax"
	LabelTotal      = "Total"
	LabelTotalItems = "Total Items"
)

// RecalcFooter derives the computed footer lines from the current rows.
//
// Subtotal is the sum of all row totals. Total adds the user-entered Tax
// line (0 when absent) to the freshly computed subtotal, never to a stale
// one. Packing slips additionally maintain a Total Items count, which is
// the plain sum of packages x units/package (no discount involvement)
// while both columns are visible, else 0; other document types leave any
// existing Total Items line untouched. Lines are updated in place and
// appended when their label is not present yet; nothing is ever removed.
func RecalcFooter(rows []Row, lines []FooterLine, cols []Column, docType DocType) []FooterLine {
	var sumOfTotals float64
	for _, row := range rows {
		sumOfTotals += ParseNumber(row[ColRowTotal])
	}
	lines = UpsertFooterLine(lines, LabelSubtotal, FormatAmount(sumOfTotals))

	var taxVal float64
	if v, ok := FooterLineValue(lines, LabelTax); ok {
		taxVal = ParseNumber(v)
	}
	lines = UpsertFooterLine(lines, LabelTotal, FormatAmount(sumOfTotals+taxVal))

	if docType == DocTypePackingSlip {
		var totalItems float64
		if ColumnVisible(cols, ColPackages) && ColumnVisible(cols, ColUnitsPerPackage) {
			for _, row := range rows {
				totalItems += ParseNumber(row[ColPackages]) * ParseNumber(row[ColUnitsPerPackage])
			}
		}
		lines = UpsertFooterLine(lines, LabelTotalItems, FormatCount(totalItems))
	}

	return lines
}

// RecalcDocument runs the full recalculation pass over a document: row
// totals first, then footer aggregation over the fresh totals. Every
// data-affecting mutation goes through this; ordering-only changes skip
// it since order carries no numeric effect.
func RecalcDocument(doc *Document) {
	doc.Rows = RecalcRowTotals(doc.Rows, doc.Columns)
	doc.TableFooter = RecalcFooter(doc.Rows, doc.TableFooter, doc.Columns, doc.DocType)
}
