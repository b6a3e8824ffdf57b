package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// parseRowIndex reads the {index} path value and checks it against the
// current row count. Out-of-range indices are a caller contract violation
// and fail loudly instead of silently no-opping.
func parseRowIndex(e *core.RequestEvent, rowCount int) (int, bool) {
	idx, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil || idx < 0 || idx >= rowCount {
		return 0, false
	}
	return idx, true
}

// HandleAddRow handles POST /documents/{id}/rows
// Appends a blank row and reruns the full recalculation pass. Footer
// aggregation always depends on the whole row set, so the pass covers
// every row, not just the new one.
func HandleAddRow(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		doc.Rows = append(doc.Rows, services.BlankRow())
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("rows: HandleAddRow: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleRemoveRow handles DELETE /documents/{id}/rows/{index}
func HandleRemoveRow(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		idx, ok := parseRowIndex(e, len(doc.Rows))
		if !ok {
			return apiError(e, http.StatusBadRequest, "Row index out of range")
		}

		doc.Rows = append(doc.Rows[:idx], doc.Rows[idx+1:]...)
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("rows: HandleRemoveRow: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}

// HandleSetCell handles PATCH /documents/{id}/rows/{index}/cells/{columnId}
// Stores the raw typed value and reruns the full recalculation pass. The
// value stays free-form text; coercion happens at calculation time so
// in-progress input never blocks typing.
func HandleSetCell(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		idx, ok := parseRowIndex(e, len(doc.Rows))
		if !ok {
			return apiError(e, http.StatusBadRequest, "Row index out of range")
		}

		columnId := e.Request.PathValue("columnId")
		colIdx := services.FindColumn(doc.Columns, columnId)
		if colIdx < 0 {
			return apiError(e, http.StatusBadRequest, "Unknown column")
		}
		if doc.Columns[colIdx].ReadOnly {
			return apiError(e, http.StatusBadRequest, "Column is read-only")
		}

		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		doc.Rows[idx][columnId] = e.Request.FormValue("value")
		services.RecalcDocument(&doc)

		if err := saveDocument(app, record, doc); err != nil {
			log.Printf("rows: HandleSetCell: could not save document %s: %v", record.Id, err)
			return serverError(e)
		}

		return e.JSON(http.StatusOK, documentResponse(record, doc))
	}
}
