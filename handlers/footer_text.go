package handlers

import (
	"log"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// footerTextPolicy allows the markup a rich-text editor emits while
// stripping anything executable before it is stored.
var footerTextPolicy = bluemonday.UGCPolicy()

// HandleSetFooterText handles PUT /documents/{id}/footer-text
// Stores the trailer markup from the rich-text widget. The engine treats
// it as opaque text; it is sanitized once here at the boundary and no
// recalculation runs.
func HandleSetFooterText(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		doc.FooterText = footerTextPolicy.Sanitize(e.Request.FormValue("text"))

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("footer_text: HandleSetFooterText: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
