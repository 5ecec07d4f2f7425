package report

import (
    "bytes"
    "io"
    "time"

    "github.com/jung-kurt/gofpdf"

    "github.com/lillybelle855/clg-predicter/models"
)

const (
    titleText = "AP EAPCET College Predictor - Rank Wise Results"

    disclaimerText = "Note: This is based on previous cutoffs. It may vary slightly in some cases. " +
        "Before proceeding, please cross-check the information with official sources."

    pageBreakMargin = 10.0
    titleHeight     = 10.0
    noteLineHeight  = 5.0
    rowHeight       = 6.0

    headerCharLimit = 30
    cellCharLimit   = 50
    cellKeepChars   = 47

    defaultColWidth = 25.0
)

// Widths in mm for the known columns; the active rank column and any
// unrecognized column fall back to defaultColWidth.
var knownColWidths = map[string]float64{
    models.ColInstCode:   20,
    models.ColName:       60,
    models.ColInstReg:    20,
    models.ColDistrict:   25,
    models.ColAffReg:     20,
    models.ColBranchCode: 20,
    models.ColPlace:      25,
    models.ColFee:        20,
}

// ColumnLayout resolves a width for every column of a result set, in
// render order.
type ColumnLayout struct {
    columns []string
    widths  []float64
}

// NewColumnLayout derives the layout for the given column list.
func NewColumnLayout(columns []string) *ColumnLayout {
    widths := make([]float64, len(columns))
    for i, col := range columns {
        if w, ok := knownColWidths[col]; ok {
            widths[i] = w
        } else {
            widths[i] = defaultColWidth
        }
    }
    return &ColumnLayout{columns: columns, widths: widths}
}

// Width returns the resolved width of the i-th column.
func (l *ColumnLayout) Width(i int) float64 {
    return l.widths[i]
}

// Render lays the result set out as a landscape A4 document and
// serializes it. Rendering never fails on row content; an absent value
// is an empty cell and overlong text is truncated. Output is
// byte-identical across calls for the same result set.
func Render(rs *models.ResultSet) ([]byte, error) {
    var buf bytes.Buffer
    if err := RenderTo(&buf, rs); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}

// RenderTo writes the rendered document to w.
func RenderTo(w io.Writer, rs *models.ResultSet) error {
    pdf := gofpdf.New("L", "mm", "A4", "")
    // Pin the metadata timestamp and sort the catalog dictionaries so
    // identical inputs serialize to identical bytes; without the sort
    // the font object numbering follows map iteration order.
    pdf.SetCreationDate(time.Unix(0, 0).UTC())
    pdf.SetCatalogSort(true)
    pdf.AddPage()
    pdf.SetAutoPageBreak(true, pageBreakMargin)

    pdf.SetFont("Arial", "B", 14)
    pdf.CellFormat(0, titleHeight, titleText, "", 1, "C", false, 0, "")
    pdf.Ln(3)

    pdf.SetFont("Arial", "", 8)
    pdf.MultiCell(0, noteLineHeight, disclaimerText, "", "", false)
    pdf.Ln(4)

    layout := NewColumnLayout(rs.Columns)

    pdf.SetFont("Arial", "B", 8)
    for i, col := range rs.Columns {
        pdf.CellFormat(layout.Width(i), rowHeight, clipText(col, headerCharLimit), "1", 0, "C", false, 0, "")
    }
    pdf.Ln(-1)

    pdf.SetFont("Arial", "", 7)
    for _, row := range rs.Rows {
        for i := range rs.Columns {
            text := ""
            if i < len(row) {
                text = truncateCell(row[i])
            }
            pdf.CellFormat(layout.Width(i), rowHeight, text, "1", 0, "C", false, 0, "")
        }
        pdf.Ln(-1)
    }

    return pdf.Output(w)
}

// clipText hard-clips text to at most limit characters.
func clipText(text string, limit int) string {
    runes := []rune(text)
    if len(runes) <= limit {
        return text
    }
    return string(runes[:limit])
}

// truncateCell shortens body text over the cell limit to its first 47
// characters plus an ellipsis marker.
func truncateCell(text string) string {
    runes := []rune(text)
    if len(runes) <= cellCharLimit {
        return text
    }
    return string(runes[:cellKeepChars]) + "..."
}
