package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// Seed creates a demo invoice the first time the app starts, so the
// editor has something to show. It is a no-op when documents exist.
func Seed(app *pocketbase.PocketBase) error {
	total, err := app.CountRecords("documents")
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if total > 0 {
		return nil
	}

	doc := services.NewDocument(services.DocTypeInvoice)
	doc.Rows = []services.Row{
		{
			services.ColProduct:         "Chair",
			services.ColDescription:     "Office chair",
			services.ColQuantity:        "2",
			services.ColPrice:           "$100",
			services.ColPackages:        "0",
			services.ColUnitsPerPackage: "0",
			services.ColUnitPrice:       "0",
			services.ColDiscount:        "0",
			services.ColRowTotal:        "0.00",
		},
		{
			services.ColProduct:         "Table",
			services.ColDescription:     "Standing desk",
			services.ColQuantity:        "1",
			services.ColPrice:           "$300",
			services.ColPackages:        "0",
			services.ColUnitsPerPackage: "0",
			services.ColUnitPrice:       "0",
			services.ColDiscount:        "0",
			services.ColRowTotal:        "0.00",
		},
	}
	services.RecalcDocument(&doc)

	col, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		return fmt.Errorf("find documents collection: %w", err)
	}

	record := core.NewRecord(col)
	if err := services.ApplyDocument(record, doc); err != nil {
		return fmt.Errorf("apply seed document: %w", err)
	}
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save seed document: %w", err)
	}

	fmt.Printf("Seeded demo document %q (id=%s)\n", doc.Header.DocumentTitle, record.Id)
	return nil
}
