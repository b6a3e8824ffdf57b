package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleDocumentDelete handles DELETE /documents/{id}
func HandleDocumentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("documents", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		if err := app.Delete(record); err != nil {
			log.Printf("document_delete: HandleDocumentDelete: could not delete document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.NoContent(http.StatusNoContent)
	}
}
