// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"documentstudio/collections"
	"documentstudio/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestDocument creates a document record from the given preset,
// runs the recalculation pass and returns the saved record.
func CreateTestDocument(t *testing.T, app *pocketbase.PocketBase, docType services.DocType) *core.Record {
	t.Helper()

	doc := services.NewDocument(docType)
	services.RecalcDocument(&doc)
	return SaveTestDocument(t, app, doc)
}

// SaveTestDocument persists an in-memory document as a new record.
func SaveTestDocument(t *testing.T, app *pocketbase.PocketBase, doc services.Document) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		t.Fatalf("failed to find documents collection: %v", err)
	}

	record := core.NewRecord(col)
	if err := services.ApplyDocument(record, doc); err != nil {
		t.Fatalf("failed to apply test document: %v", err)
	}
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test document: %v", err)
	}

	return record
}

// LoadTestDocument re-reads a document record from storage and decodes it.
func LoadTestDocument(t *testing.T, app *pocketbase.PocketBase, id string) services.Document {
	t.Helper()

	record, err := app.FindRecordById("documents", id)
	if err != nil {
		t.Fatalf("failed to find document %s: %v", id, err)
	}
	doc, err := services.DocumentFromRecord(record)
	if err != nil {
		t.Fatalf("failed to decode document %s: %v", id, err)
	}
	return doc
}
