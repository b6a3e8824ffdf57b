package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// parseReorderIndices reads the from/to form values for a reorder
// request. from is required; a missing or empty to means the drag was
// cancelled and maps to the no-op destination.
func parseReorderIndices(e *core.RequestEvent) (from, to int, err error) {
	fromStr := strings.TrimSpace(e.Request.FormValue("from"))
	from, err = strconv.Atoi(fromStr)
	if err != nil {
		return 0, 0, errors.New("missing or invalid from index")
	}

	toStr := strings.TrimSpace(e.Request.FormValue("to"))
	if toStr == "" {
		return from, -1, nil
	}
	to, err = strconv.Atoi(toStr)
	if err != nil {
		return 0, 0, errors.New("invalid to index")
	}
	return from, to, nil
}

// HandleReorderColumns handles POST /documents/{id}/columns/reorder
// Pure positional reorder; ordering carries no numeric effect, so no
// recalculation runs.
func HandleReorderColumns(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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

		reordered, err := services.Reorder(doc.Columns, from, to)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Column index out of range")
		}
		doc.Columns = reordered

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("columns: HandleReorderColumns: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleToggleColumn handles POST /documents/{id}/columns/{columnId}/toggle
// Flips one column's visibility. Formula selection depends on
// visibility, so the full recalculation pass runs right away rather than
// leaving stale totals on display until the next edit.
func HandleToggleColumn(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		columnId := e.Request.PathValue("columnId")
		idx := services.FindColumn(doc.Columns, columnId)
		if idx < 0 {
			return apiError(e, http.StatusNotFound, "Column not found")
		}

		doc.Columns[idx].Visible = !doc.Columns[idx].Visible
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("columns: HandleToggleColumn: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
