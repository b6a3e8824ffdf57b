package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleDocumentView handles GET /documents/{id}
// Returns the full document snapshot.
func HandleDocumentView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			log.Printf("document_view: HandleDocumentView: %v", err)
			return notFound(e)
		}
		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
