package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateDocumentPDF renders a document snapshot to PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateDocumentPDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addDocumentHeader(m, data)
	addDocumentTable(m, data)
	addFooterLinesBlock(m, data)
	addTrailer(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func docTypeTitle(docType DocType) string {
	if docType == DocTypePackingSlip {
		return "PACKING SLIP"
	}
	return "INVOICE"
}

// addDocumentHeader adds company name, the document-type banner, address,
// document title, customer info and date.
func addDocumentHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Header.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(docTypeTitle(data.DocType), props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(data.Header.CompanyAddress, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(data.Header.DocumentTitle, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  8,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Customer: %s", data.Header.CustomerInfo), props.Text{
					Size:  8,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// gridWidths distributes maroto's 12-unit grid over n table columns, the
// remainder going to the leading columns.
func gridWidths(n int) []int {
	widths := make([]int, n)
	base := 12 / n
	rem := 12 % n
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

// addDocumentTable adds the visible-column header and one row per data row.
func addDocumentTable(m core.Maroto, data ExportData) {
	visible := data.VisibleColumns()
	if len(visible) == 0 {
		return
	}
	widths := gridWidths(len(visible))

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	headerCols := make([]core.Col, 0, len(visible))
	for i, c := range visible {
		style := headerText
		if c.ID == ColRowTotal {
			style = headerTextRight
		}
		headerCols = append(headerCols,
			col.New(widths[i]).Add(text.New(c.Label, style)).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(headerCols...))

	cellText := props.Text{
		Size:  8,
		Align: align.Left,
	}
	cellTextRight := cellText
	cellTextRight.Align = align.Right

	for _, r := range data.Rows {
		rowCols := make([]core.Col, 0, len(visible))
		for i, c := range visible {
			style := cellText
			if c.ID == ColRowTotal {
				style = cellTextRight
			}
			rowCols = append(rowCols,
				col.New(widths[i]).Add(text.New(CellText(r[c.ID]), style)))
		}
		m.AddRows(row.New(6).Add(rowCols...))
	}

	m.AddRows(row.New(3))
}

// addFooterLinesBlock adds the summary block, right-aligned like the
// on-screen preview, followed by the grand total in words.
func addFooterLinesBlock(m core.Maroto, data ExportData) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	for _, line := range data.FooterLines {
		m.AddRows(
			row.New(6).Add(
				col.New(7),
				col.New(3).Add(text.New(line.Label+":", labelStyle)),
				col.New(2).Add(text.New(line.Value, valueStyle)),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", AmountInWords(data.GrandTotal())), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}

// addTrailer adds the free-form trailer text at the bottom of the page.
func addTrailer(m core.Maroto, data ExportData) {
	trailer := data.PlainFooterText()
	if trailer == "" {
		return
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(trailer, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}
