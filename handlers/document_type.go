package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// HandleSwitchDocType handles POST /documents/{id}/type
// Switching the document type is a hard reset: columns, footer lines and
// header are replaced from the target preset and the rows collapse to a
// single blank row. Nothing carries over from the previous type. The
// recalculation pass then restores steady state for the fresh row set.
func HandleSwitchDocType(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, _, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		typeStr := strings.TrimSpace(e.Request.FormValue("doc_type"))
		docType, err := services.ParseDocType(typeStr)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Unknown document type")
		}

		doc := services.NewDocument(docType)
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("document_type: HandleSwitchDocType: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
