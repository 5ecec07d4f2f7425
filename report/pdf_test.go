package report

import (
    "bytes"
    "reflect"
    "strings"
    "testing"

    "github.com/lillybelle855/clg-predicter/models"
)

func testResultSet() *models.ResultSet {
    return &models.ResultSet{
        Category: "OC_BOYS",
        Columns:  models.ResultColumns("OC_BOYS"),
        Rows: [][]string{
            {"A001", "Govt College of Engineering", "AU", "GTR", "AU", "CSE", "Guntur", "28000", "35000"},
            {"A002", strings.Repeat("Very Long Institution Name ", 4), "AU", "VSP", "SVU", "ECE", "Vizag", "31000", "70000"},
        },
    }
}

func TestRenderProducesPDF(t *testing.T) {
    doc, err := Render(testResultSet())
    if err != nil {
        t.Fatalf("Render returned error: %v", err)
    }
    if len(doc) == 0 {
        t.Fatal("Render produced empty output")
    }
    if !bytes.HasPrefix(doc, []byte("%PDF")) {
        t.Errorf("output does not start with %%PDF header")
    }
}

func TestRenderEmptyResultSet(t *testing.T) {
    rs := &models.ResultSet{
        Category: "OC_BOYS",
        Columns:  models.ResultColumns("OC_BOYS"),
    }
    doc, err := Render(rs)
    if err != nil {
        t.Fatalf("Render returned error: %v", err)
    }
    if !bytes.HasPrefix(doc, []byte("%PDF")) {
        t.Errorf("empty result set should still render a document")
    }
}

func TestRenderDeterministic(t *testing.T) {
    rs := testResultSet()

    first, err := Render(rs)
    if err != nil {
        t.Fatalf("first Render returned error: %v", err)
    }

    // The regular and bold font dictionaries are emitted from a map,
    // so a single re-render can pass by luck; repeat enough times to
    // catch object-numbering flips.
    for i := 0; i < 20; i++ {
        doc, err := Render(rs)
        if err != nil {
            t.Fatalf("Render %d returned error: %v", i+2, err)
        }
        if !bytes.Equal(first, doc) {
            t.Fatalf("render %d differs from the first render", i+2)
        }
    }
}

func TestRenderDoesNotMutateResultSet(t *testing.T) {
    rs := testResultSet()
    before := make([][]string, len(rs.Rows))
    for i, row := range rs.Rows {
        before[i] = append([]string{}, row...)
    }

    if _, err := Render(rs); err != nil {
        t.Fatalf("Render returned error: %v", err)
    }

    if !reflect.DeepEqual(rs.Rows, before) {
        t.Errorf("Render mutated the result set rows")
    }
}

func TestTruncateCell(t *testing.T) {
    tests := []struct {
        name string
        in   string
        want string
    }{
        {"empty", "", ""},
        {"short text unchanged", "Guntur", "Guntur"},
        {"exactly 50 chars unchanged", strings.Repeat("a", 50), strings.Repeat("a", 50)},
        {"51 chars truncated", strings.Repeat("a", 51), strings.Repeat("a", 47) + "..."},
        {"long text truncated", strings.Repeat("xy", 60), strings.Repeat("xy", 23) + "x" + "..."},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := truncateCell(tt.in); got != tt.want {
                t.Errorf("truncateCell(%q) = %q, want %q", tt.in, got, tt.want)
            }
        })
    }
}

func TestTruncatedCellLength(t *testing.T) {
    got := truncateCell(strings.Repeat("z", 200))
    if len([]rune(got)) != 50 {
        t.Errorf("truncated cell is %d chars, want 50 (47 + ellipsis)", len([]rune(got)))
    }
    if !strings.HasSuffix(got, "...") {
        t.Errorf("truncated cell missing ellipsis marker: %q", got)
    }
}

func TestClipText(t *testing.T) {
    tests := []struct {
        name  string
        in    string
        limit int
        want  string
    }{
        {"under limit", "INSTCODE", 30, "INSTCODE"},
        {"at limit", strings.Repeat("h", 30), 30, strings.Repeat("h", 30)},
        {"over limit", strings.Repeat("h", 31), 30, strings.Repeat("h", 30)},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := clipText(tt.in, tt.limit); got != tt.want {
                t.Errorf("clipText(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
            }
        })
    }
}

func TestNewColumnLayout(t *testing.T) {
    columns := models.ResultColumns("OC_BOYS")
    layout := NewColumnLayout(columns)

    wantWidths := []float64{20, 60, 20, 25, 20, 20, 25, 25, 20}
    for i := range columns {
        if layout.Width(i) != wantWidths[i] {
            t.Errorf("width for %q = %v, want %v", columns[i], layout.Width(i), wantWidths[i])
        }
    }
}

func TestNewColumnLayoutUnknownColumn(t *testing.T) {
    layout := NewColumnLayout([]string{"SOMETHING_ELSE"})
    if layout.Width(0) != defaultColWidth {
        t.Errorf("unknown column width = %v, want default %v", layout.Width(0), defaultColWidth)
    }
}
