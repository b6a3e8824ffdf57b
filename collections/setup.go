// Package collections creates and seeds the PocketBase collections backing
// the document editor.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the documents collection exists.
// A document is a single record: its columns, rows and footer lines live
// in JSON fields so a recalculated state is always committed atomically.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "documents", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "doc_type",
			Required:  true,
			Values:    []string{"invoice", "packing_slip"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "document_title", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_info", Required: false})
		c.Fields.Add(&core.JSONField{Name: "columns"})
		c.Fields.Add(&core.JSONField{Name: "rows"})
		c.Fields.Add(&core.JSONField{Name: "table_footer"})
		c.Fields.Add(&core.TextField{Name: "footer_text", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback is invoked to populate
// its fields, and the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
