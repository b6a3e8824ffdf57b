package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// HandleAddFooterLine handles POST /documents/{id}/footer-lines
// Appends a line with the default label and value. The default does not
// collide with the computed labels; if the user later renames it to one,
// the next recalculation upserts into it.
func HandleAddFooterLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		doc.TableFooter = append(doc.TableFooter, services.MakeFooterLine("New Line", "0.00"))

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("footer_lines: HandleAddFooterLine: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleUpdateFooterLine handles PATCH /documents/{id}/footer-lines/{lineId}
// Edits a line by id, not by label, so a label can be renamed freely.
// The pass reruns afterwards: editing the Tax value refreshes Total in
// the same commit, and a line renamed to a computed label becomes the
// upsert target immediately.
func HandleUpdateFooterLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		idx := services.FindFooterLine(doc.TableFooter, e.Request.PathValue("lineId"))
		if idx < 0 {
			return apiError(e, http.StatusNotFound, "Footer line not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		form := e.Request.PostForm
		if vals, ok := form["label"]; ok {
			doc.TableFooter[idx].Label = vals[0]
		}
		if vals, ok := form["value"]; ok {
			doc.TableFooter[idx].Value = vals[0]
		}

		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("footer_lines: HandleUpdateFooterLine: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleDeleteFooterLine handles DELETE /documents/{id}/footer-lines/{lineId}
// Lines are only ever removed by explicit user action; recalculation
// afterwards re-derives the computed lines (deleting the Tax line, for
// instance, changes Total, and deleting Subtotal just re-appends it).
func HandleDeleteFooterLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		idx := services.FindFooterLine(doc.TableFooter, e.Request.PathValue("lineId"))
		if idx < 0 {
			return apiError(e, http.StatusNotFound, "Footer line not found")
		}

		doc.TableFooter = append(doc.TableFooter[:idx], doc.TableFooter[idx+1:]...)
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("footer_lines: HandleDeleteFooterLine: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleReorderFooterLines handles POST /documents/{id}/footer-lines/reorder
func HandleReorderFooterLines(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		from, to, err := parseReorderIndices(e)
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		reordered, err := services.Reorder(doc.TableFooter, from, to)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Footer line index out of range")
		}
		doc.TableFooter = reordered

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("footer_lines: HandleReorderFooterLines: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
