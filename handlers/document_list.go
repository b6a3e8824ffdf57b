package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleDocumentList handles GET /documents
// Returns a summary of every document, newest first.
func HandleDocumentList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter(
			"documents",
			"id != ''",
			"-created",
			0,
			0,
			nil,
		)
		if err != nil {
			log.Printf("document_list: HandleDocumentList: could not query documents: %v", err)
			records = nil
		}

		items := make([]map[string]any, 0, len(records))
		for _, r := range records {
			items = append(items, map[string]any{
				"id":            r.Id,
				"docType":       r.GetString("doc_type"),
				"documentTitle": r.GetString("document_title"),
				"customerInfo":  r.GetString("customer_info"),
				"created":       r.GetDateTime("created"),
				"updated":       r.GetDateTime("updated"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"documents": items})
	}
}
