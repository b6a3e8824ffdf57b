package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/collections"
	"documentstudio/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Document CRUD ────────────────────────────────────────
		se.Router.GET("/documents", handlers.HandleDocumentList(app))
		se.Router.POST("/documents", handlers.HandleDocumentCreate(app))

		// ── Document structure ───────────────────────────────────
		se.Router.POST("/documents/{id}/type", handlers.HandleSwitchDocType(app))
		se.Router.PATCH("/documents/{id}/header", handlers.HandleHeaderUpdate(app))

		// ── Rows ─────────────────────────────────────────────────
		se.Router.POST("/documents/{id}/rows", handlers.HandleAddRow(app))
		se.Router.DELETE("/documents/{id}/rows/{index}", handlers.HandleRemoveRow(app))
		se.Router.PATCH("/documents/{id}/rows/{index}/cells/{columnId}", handlers.HandleSetCell(app))

		// ── Columns (reorder must be before {columnId} routes) ───
		se.Router.POST("/documents/{id}/columns/reorder", handlers.HandleReorderColumns(app))
		se.Router.POST("/documents/{id}/columns/{columnId}/toggle", handlers.HandleToggleColumn(app))

		// ── Footer lines ─────────────────────────────────────────
		se.Router.POST("/documents/{id}/footer-lines/reorder", handlers.HandleReorderFooterLines(app))
		se.Router.POST("/documents/{id}/footer-lines", handlers.HandleAddFooterLine(app))
		se.Router.PATCH("/documents/{id}/footer-lines/{lineId}", handlers.HandleUpdateFooterLine(app))
		se.Router.DELETE("/documents/{id}/footer-lines/{lineId}", handlers.HandleDeleteFooterLine(app))

		// ── Footer text ──────────────────────────────────────────
		se.Router.PUT("/documents/{id}/footer-text", handlers.HandleSetFooterText(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/documents/{id}/export/pdf", handlers.HandleDocumentExportPDF(app))
		se.Router.GET("/documents/{id}/export/excel", handlers.HandleDocumentExportExcel(app))

		// ── Document view/delete (after specific /documents/{id}/* routes) ──
		se.Router.GET("/documents/{id}", handlers.HandleDocumentView(app))
		se.Router.DELETE("/documents/{id}", handlers.HandleDocumentDelete(app))

		// Redirect home to documents list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/documents")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
