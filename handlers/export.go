package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/services"
)

// buildDocumentExportData assembles the render snapshot for a document.
// The stored totals are used as-is; they are already consistent with the
// rows at every commit.
func buildDocumentExportData(record *core.Record, doc services.Document) services.ExportData {
	return services.ExportData{
		DocType:     doc.DocType,
		Header:      doc.Header,
		Columns:     doc.Columns,
		Rows:        doc.Rows,
		FooterLines: doc.TableFooter,
		FooterText:  doc.FooterText,
		CreatedDate: record.GetDateTime("created").Time().Format("02 Jan 2006"),
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleDocumentExportPDF returns a handler that generates and downloads
// a PDF rendering of a document.
// GET /documents/{id}/export/pdf
func HandleDocumentExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		data := buildDocumentExportData(record, doc)

		pdfBytes, err := services.GenerateDocumentPDF(data)
		if err != nil {
			log.Printf("export: HandleDocumentExportPDF: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("%s_%d.pdf", sanitizeFilename(data.Title()), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleDocumentExportExcel returns a handler that generates and
// downloads an Excel rendering of a document.
// GET /documents/{id}/export/excel
func HandleDocumentExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, doc, err := findDocument(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e)
		}

		data := buildDocumentExportData(record, doc)

		xlsxBytes, err := services.GenerateDocumentExcel(data)
		if err != nil {
			log.Printf("export: HandleDocumentExportExcel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("%s_%d.xlsx", sanitizeFilename(data.Title()), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
