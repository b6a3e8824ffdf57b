package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateDocumentExcel renders a document snapshot to an Excel workbook
// and returns the file contents as a byte slice.
func GenerateDocumentExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := sanitizeSheetName(data.Title())

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	visible := data.VisibleColumns()

	lastCol := "B"
	if len(visible) > 2 {
		name, err := excelize.ColumnNumberToName(len(visible))
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		lastCol = name
	}

	// Column widths: generous for text columns, narrower for numerics.
	for i, c := range visible {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		width := 14.0
		if c.ID == ColProduct || c.ID == ColDescription {
			width = 30
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", data.Header.DocumentTitle); err != nil {
		return nil, fmt.Errorf("set title: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, fmt.Errorf("style title: %w", err)
	}

	subtitles := []string{
		data.Header.CompanyName,
		data.Header.CompanyAddress,
		fmt.Sprintf("Customer: %s", data.Header.CustomerInfo),
		fmt.Sprintf("Date: %s", data.CreatedDate),
	}
	rowIdx := 2
	for _, s := range subtitles {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, s); err != nil {
			return nil, fmt.Errorf("set subtitle: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, subtitleStyle); err != nil {
			return nil, fmt.Errorf("style subtitle: %w", err)
		}
		rowIdx++
	}
	rowIdx++ // blank spacer row

	// ── Column header row ───────────────────────────────────────────────

	headerRow := rowIdx
	for i, c := range visible {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, c.Label); err != nil {
			return nil, fmt.Errorf("set header cell: %w", err)
		}
	}
	if len(visible) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(visible), headerRow)
		if err := f.SetCellStyle(sheetName, first, last, headerStyle); err != nil {
			return nil, fmt.Errorf("style header row: %w", err)
		}
	}
	rowIdx++

	// ── Data rows ───────────────────────────────────────────────────────

	for _, r := range data.Rows {
		for i, c := range visible {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, CellText(r[c.ID])); err != nil {
				return nil, fmt.Errorf("set data cell: %w", err)
			}
		}
		if len(visible) > 0 {
			first, _ := excelize.CoordinatesToCellName(1, rowIdx)
			last, _ := excelize.CoordinatesToCellName(len(visible), rowIdx)
			if err := f.SetCellStyle(sheetName, first, last, cellStyle); err != nil {
				return nil, fmt.Errorf("style data row: %w", err)
			}
		}
		rowIdx++
	}
	rowIdx++ // blank spacer row

	// ── Footer summary block ────────────────────────────────────────────

	labelCol := len(visible) - 1
	if labelCol < 1 {
		labelCol = 1
	}
	valueCol := labelCol + 1

	for _, line := range data.FooterLines {
		labelCell, err := excelize.CoordinatesToCellName(labelCol, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(valueCol, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, labelCell, line.Label); err != nil {
			return nil, fmt.Errorf("set summary label: %w", err)
		}
		if err := f.SetCellValue(sheetName, valueCell, line.Value); err != nil {
			return nil, fmt.Errorf("set summary value: %w", err)
		}
		if err := f.SetCellStyle(sheetName, labelCell, labelCell, summaryLabelStyle); err != nil {
			return nil, fmt.Errorf("style summary label: %w", err)
		}
		if err := f.SetCellStyle(sheetName, valueCell, valueCell, summaryValueStyle); err != nil {
			return nil, fmt.Errorf("style summary value: %w", err)
		}
		rowIdx++
	}

	// ── Trailer text ────────────────────────────────────────────────────

	if trailer := data.PlainFooterText(); trailer != "" {
		rowIdx++
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, trailer); err != nil {
			return nil, fmt.Errorf("set trailer: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func sanitizeSheetName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	name := string(out)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Document"
	}
	return name
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
