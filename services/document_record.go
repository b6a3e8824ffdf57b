package services

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// DocumentFromRecord decodes a documents record into a Document.
func DocumentFromRecord(record *core.Record) (Document, error) {
	docType, err := ParseDocType(record.GetString("doc_type"))
	if err != nil {
		return Document{}, fmt.Errorf("document %s: %w", record.Id, err)
	}

	doc := Document{
		DocType: docType,
		Header: Header{
			CompanyName:    record.GetString("company_name"),
			CompanyAddress: record.GetString("company_address"),
			DocumentTitle:  record.GetString("document_title"),
			CustomerInfo:   record.GetString("customer_info"),
		},
		FooterText: record.GetString("footer_text"),
	}

	if err := unmarshalJSONField(record, "columns", &doc.Columns); err != nil {
		return Document{}, err
	}
	if err := unmarshalJSONField(record, "rows", &doc.Rows); err != nil {
		return Document{}, err
	}
	if err := unmarshalJSONField(record, "table_footer", &doc.TableFooter); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// ApplyDocument writes a Document back onto its record. Columns, rows and
// footer lines live in JSON fields of the same record, so saving it
// commits the recalculated rows and footer as one atomic update.
func ApplyDocument(record *core.Record, doc Document) error {
	record.Set("doc_type", string(doc.DocType))
	record.Set("company_name", doc.Header.CompanyName)
	record.Set("company_address", doc.Header.CompanyAddress)
	record.Set("document_title", doc.Header.DocumentTitle)
	record.Set("customer_info", doc.Header.CustomerInfo)
	record.Set("footer_text", doc.FooterText)

	for key, val := range map[string]any{
		"columns":      doc.Columns,
		"rows":         doc.Rows,
		"table_footer": doc.TableFooter,
	} {
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		record.Set(key, types.JSONRaw(raw))
	}

	return nil
}

func unmarshalJSONField(record *core.Record, key string, dst any) error {
	raw := record.GetString(key)
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s of document %s: %w", key, record.Id, err)
	}
	return nil
}
