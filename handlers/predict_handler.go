package handlers

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"

    "github.com/lillybelle855/clg-predicter/config"
    "github.com/lillybelle855/clg-predicter/models"
    "github.com/lillybelle855/clg-predicter/predictor"
    "github.com/lillybelle855/clg-predicter/report"
)

// PDFFileName is the fixed attachment name for the download endpoint.
const PDFFileName = "predicted_college_list.pdf"

type windowInfo struct {
    Lower int `json:"lower"`
    Upper int `json:"upper"`
}

// PredictResponse is the JSON body for /predict.
type PredictResponse struct {
    Rank        int                 `json:"rank"`
    Category    string              `json:"category"`
    Window      windowInfo          `json:"window"`
    Count       int                 `json:"count"`
    DroppedRows int                 `json:"dropped_rows"`
    Columns     []string            `json:"columns"`
    Results     []map[string]string `json:"results"`
    Message     string              `json:"message,omitempty"`
}

// PredictColleges handles POST /predict: runs the filter + range-match
// pipeline and returns the eligible institutions as JSON.
func PredictColleges(w http.ResponseWriter, r *http.Request) {
    criteria, ok := decodeCriteria(w, r)
    if !ok {
        return
    }

    rs, dropped, ok := runPrediction(w, criteria)
    if !ok {
        return
    }

    lower, upper := predictor.Window(criteria.TargetRank)
    response := PredictResponse{
        Rank:        criteria.TargetRank,
        Category:    criteria.Category,
        Window:      windowInfo{Lower: lower, Upper: upper},
        Count:       rs.Len(),
        DroppedRows: dropped,
        Columns:     rs.Columns,
        Results:     resultsAsMaps(rs),
    }
    if rs.Len() == 0 {
        response.Message = "No matching colleges found for your filters"
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

// DownloadPredictionPDF handles POST /predict/pdf: same pipeline, but
// streams the rendered document as a download.
func DownloadPredictionPDF(w http.ResponseWriter, r *http.Request) {
    criteria, ok := decodeCriteria(w, r)
    if !ok {
        return
    }

    rs, dropped, ok := runPrediction(w, criteria)
    if !ok {
        return
    }

    // Render before touching headers so a renderer error can still
    // become a 500.
    doc, err := report.Render(rs)
    if err != nil {
        log.Printf("Error rendering PDF for rank %d: %v", criteria.TargetRank, err)
        http.Error(w, "Error generating PDF", http.StatusInternalServerError)
        return
    }

    log.Printf("Rendered PDF for rank %d (%s): %d rows, %d dropped, %d bytes",
        criteria.TargetRank, criteria.Category, rs.Len(), dropped, len(doc))

    w.Header().Set("Content-Type", "application/pdf")
    w.Header().Set("Content-Disposition", `attachment; filename="`+PDFFileName+`"`)
    w.Write(doc)
}

func decodeCriteria(w http.ResponseWriter, r *http.Request) (*models.FilterCriteria, bool) {
    var criteria models.FilterCriteria
    if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
        log.Printf("Error decoding predict request: %v", err)
        http.Error(w, "Invalid request format", http.StatusBadRequest)
        return nil, false
    }
    if criteria.Category == "" {
        http.Error(w, "Category is required", http.StatusBadRequest)
        return nil, false
    }
    return &criteria, true
}

func runPrediction(w http.ResponseWriter, criteria *models.FilterCriteria) (*models.ResultSet, int, bool) {
    ds := config.GetDataset()
    if ds == nil {
        http.Error(w, "Dataset not loaded", http.StatusServiceUnavailable)
        return nil, 0, false
    }

    rs, dropped, err := predictor.Predict(ds, criteria)
    if err != nil {
        var rankErr *models.InvalidRankError
        var schemaErr *models.SchemaError
        switch {
        case errors.As(err, &rankErr):
            http.Error(w, "Please enter a valid rank", http.StatusBadRequest)
        case errors.As(err, &schemaErr):
            http.Error(w, err.Error(), http.StatusBadRequest)
        default:
            log.Printf("Prediction failed: %v", err)
            http.Error(w, "Error running prediction", http.StatusInternalServerError)
        }
        return nil, 0, false
    }

    if dropped > 0 {
        log.Printf("Dropped %d rows with blank or non-numeric %s cutoffs", dropped, criteria.Category)
    }
    return rs, dropped, true
}

func resultsAsMaps(rs *models.ResultSet) []map[string]string {
    results := make([]map[string]string, 0, rs.Len())
    for _, row := range rs.Rows {
        entry := make(map[string]string, len(rs.Columns))
        for i, col := range rs.Columns {
            if i < len(row) {
                entry[col] = row[i]
            }
        }
        results = append(results, entry)
    }
    return results
}
