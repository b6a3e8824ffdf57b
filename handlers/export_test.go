package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"documentstudio/services"
	"documentstudio/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "My Document", "My-Document"},
		{"slashes", "A/B", "A-B"},
		{"backslashes", `A\B`, "A-B"},
		{"colons", "A:B", "A-B"},
		{"mixed", "A / B \\ C : D", "A---B---C---D"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandleDocumentExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestDocument(t, app, services.DocTypeInvoice)

	handler := HandleDocumentExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/documents/%s/export/pdf", record.Id), nil)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/pdf" {
		t.Errorf("expected content-type application/pdf, got %s", contentType)
	}
	disp := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disp, "attachment") {
		t.Errorf("expected attachment disposition, got %q", disp)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected non-empty PDF body")
	}
	if body := rec.Body.Bytes(); len(body) > 4 && string(body[:5]) != "%PDF-" {
		t.Errorf("body does not start with PDF header, got %q", string(body[:5]))
	}
}

func TestHandleDocumentExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleDocumentExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/documents/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDocumentExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestDocument(t, app, services.DocTypePackingSlip)

	handler := HandleDocumentExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/documents/%s/export/excel", record.Id), nil)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ct := rec.Header().Get("Content-Type")
	if !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected Excel content type, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty body")
	}
}

func TestBuildDocumentExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestDocument(t, app, services.DocTypeInvoice)
	doc := testhelpers.LoadTestDocument(t, app, record.Id)

	data := buildDocumentExportData(record, doc)
	if data.Header.DocumentTitle != "Invoice #0001" {
		t.Errorf("title = %q, want Invoice #0001", data.Header.DocumentTitle)
	}
	if len(data.Rows) != len(doc.Rows) {
		t.Errorf("rows = %d, want %d", len(data.Rows), len(doc.Rows))
	}
	if len(data.FooterLines) != len(doc.TableFooter) {
		t.Errorf("footer lines = %d, want %d", len(data.FooterLines), len(doc.TableFooter))
	}
	if data.CreatedDate == "" {
		t.Error("expected a formatted created date")
	}
}
