package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// HandleDocumentCreate handles POST /documents
// Creates a new document from the named preset (invoice by default) and
// runs the first recalculation pass so the snapshot starts consistent.
func HandleDocumentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		typeStr := strings.TrimSpace(e.Request.FormValue("doc_type"))
		if typeStr == "" {
			typeStr = string(services.DocTypeInvoice)
		}
		docType, err := services.ParseDocType(typeStr)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Unknown document type")
		}

		doc := services.NewDocument(docType)
		services.RecalcDocument(&doc)

		col, err := app.FindCollectionByNameOrId("documents")
		if err != nil {
			log.Printf("document_create: HandleDocumentCreate: could not find documents collection: %v", err)
			return serverError(e)
		}

		record := core.NewRecord(col)
		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("document_create: HandleDocumentCreate: could not save document: %v", err)
			return serverError(e)
		}

		return e.JSON(http.StatusCreated, documentResponse(record, doc))
	}
}
