package services

// Column ids shared by every document type. The presets never invent new
// ids; users only change visibility and order.
const (
	ColProduct         = "product"
	ColDescription     = "description"
	ColQuantity        = "quantity"
	ColPrice           = "price"
	ColPackages        = "packages"
	ColUnitsPerPackage = "unitsPerPackage"
	ColUnitPrice       = "unitPrice"
	ColRowTotal        = "rowTotal"
	ColDiscount        = "discount"
)

// ColumnVisible reports whether the column with the given id is present
// and visible.
func ColumnVisible(cols []Column, id string) bool {
	for _, c := range cols {
		if c.ID == id {
			return c.Visible
		}
	}
	return false
}

// FindColumn returns the index of the column with the given id, or -1.
func FindColumn(cols []Column, id string) int {
	for i, c := range cols {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// RecalcRowTotals derives every row's total from the current column
// visibility. Row count and order are preserved and the input rows are
// not mutated; only the rowTotal cell differs in the result.
//
// Formula selection depends on visibility, not document type: the
// packaging formula (packages x units/package x unit price - discount)
// applies when the packages, units-per-package and unit price columns are
// all visible; otherwise the quantity formula (quantity x price -
// discount) is used. Hidden operand columns fall back to their defaults:
// quantity 1, price 0, discount 0.
func RecalcRowTotals(rows []Row, cols []Column) []Row {
	packagesVis := ColumnVisible(cols, ColPackages)
	unitsVis := ColumnVisible(cols, ColUnitsPerPackage)
	unitPriceVis := ColumnVisible(cols, ColUnitPrice)
	qtyVis := ColumnVisible(cols, ColQuantity)
	priceVis := ColumnVisible(cols, ColPrice)
	discountVis := ColumnVisible(cols, ColDiscount)

	out := make([]Row, len(rows))
	for i, row := range rows {
		var discount float64
		if discountVis {
			discount = ParseNumber(row[ColDiscount])
		}

		var total float64
		if packagesVis && unitsVis && unitPriceVis {
			total = ParseNumber(row[ColPackages])*
				ParseNumber(row[ColUnitsPerPackage])*
				ParseNumber(row[ColUnitPrice]) - discount
		} else {
			qty := 1.0
			if qtyVis {
				qty = ParseNumber(row[ColQuantity])
			}
			var price float64
			if priceVis {
				price = ParseNumber(row[ColPrice])
			}
			total = qty*price - discount
		}

		updated := make(Row, len(row)+1)
		for k, v := range row {
			updated[k] = v
		}
		updated[ColRowTotal] = FormatAmount(total)
		out[i] = updated
	}
	return out
}
