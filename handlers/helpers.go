// Package handlers exposes the document mutation operations over HTTP.
// Every handler loads the document record, applies the pure
// transformation from the services package, runs the recalculation pass
// where the operation requires it, and commits the result as a single
// record save.
package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// findDocument loads a documents record and decodes it.
func findDocument(app *pocketbase.PocketBase, id string) (*core.Record, services.Document, error) {
	record, err := app.FindRecordById("documents", id)
	if err != nil {
		return nil, services.Document{}, err
	}
	doc, err := services.DocumentFromRecord(record)
	if err != nil {
		return nil, services.Document{}, err
	}
	return record, doc, nil
}

// saveDocument writes the document back onto its record and persists it.
// Rows and footer lines travel in the same record, so the recalculated
// state is committed atomically: no observer ever sees rows updated with
// a stale footer.
func saveDocument(app *pocketbase.PocketBase, record *core.Record, doc services.Document) error {
	if err := services.ApplyDocument(record, doc); err != nil {
		return err
	}
	return app.Save(record)
}

// documentResponse is the JSON snapshot handed back to the presentation
// layer after every operation.
func documentResponse(record *core.Record, doc services.Document) map[string]any {
	return map[string]any{
		"id":          record.Id,
		"docType":     doc.DocType,
		"header":      doc.Header,
		"columns":     doc.Columns,
		"rows":        doc.Rows,
		"tableFooter": doc.TableFooter,
		"footerText":  doc.FooterText,
		"created":     record.GetDateTime("created"),
		"updated":     record.GetDateTime("updated"),
	}
}

func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

func notFound(e *core.RequestEvent) error {
	return apiError(e, http.StatusNotFound, "Document not found")
}

func serverError(e *core.RequestEvent) error {
	return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
