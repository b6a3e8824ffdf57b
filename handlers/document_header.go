package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleHeaderUpdate handles PATCH /documents/{id}/header
// Updates only the header fields present in the form, so a field can be
// cleared by submitting it empty. Header text carries no numeric effect,
// so no recalculation runs.
func HandleHeaderUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		form := e.Request.PostForm
		if vals, ok := form["company_name"]; ok {
			doc.Header.CompanyName = strings.TrimSpace(vals[0])
		}
		if vals, ok := form["company_address"]; ok {
			doc.Header.CompanyAddress = strings.TrimSpace(vals[0])
		}
		if vals, ok := form["document_title"]; ok {
			doc.Header.DocumentTitle = strings.TrimSpace(vals[0])
		}
		if vals, ok := form["customer_info"]; ok {
			doc.Header.CustomerInfo = strings.TrimSpace(vals[0])
		}

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("document_header: HandleHeaderUpdate: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
