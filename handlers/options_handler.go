package handlers

import (
    "encoding/json"
    "net/http"
    "sort"
    "strings"

    "github.com/lillybelle855/clg-predicter/config"
    "github.com/lillybelle855/clg-predicter/models"
)

// Option-list endpoints back the selection form: distinct sorted
// values per dimension, with an optional ?q= prefix filter. Lists are
// cached since the snapshot only changes on restart.

func GetCategoryOptions(w http.ResponseWriter, r *http.Request) {
    serveOptions(w, r, config.GetCacheKey("options", "categories"), func(ds *models.Dataset) []string {
        return ds.SortedCategories()
    })
}

func GetBranchOptions(w http.ResponseWriter, r *http.Request) {
    serveOptions(w, r, config.GetCacheKey("options", "branches"), func(ds *models.Dataset) []string {
        return distinctValues(ds, func(rec models.Record) string { return rec.BranchCode })
    })
}

func GetDistrictOptions(w http.ResponseWriter, r *http.Request) {
    serveOptions(w, r, config.GetCacheKey("options", "districts"), func(ds *models.Dataset) []string {
        return distinctValues(ds, func(rec models.Record) string { return rec.District })
    })
}

func GetRegionOptions(w http.ResponseWriter, r *http.Request) {
    serveOptions(w, r, config.GetCacheKey("options", "regions"), func(ds *models.Dataset) []string {
        return distinctValues(ds, func(rec models.Record) string { return rec.AffReg })
    })
}

func serveOptions(w http.ResponseWriter, r *http.Request, cacheKey string, collect func(*models.Dataset) []string) {
    ds := config.GetDataset()
    if ds == nil {
        http.Error(w, "Dataset not loaded", http.StatusServiceUnavailable)
        return
    }

    var options []string
    if cached, found := config.OptionsCache.Get(cacheKey); found {
        options = cached.([]string)
    } else {
        options = collect(ds)
        config.OptionsCache.SetDefault(cacheKey, options)
    }

    if prefix := strings.TrimSpace(r.URL.Query().Get("q")); prefix != "" {
        filtered := make([]string, 0, len(options))
        for _, opt := range options {
            if strings.HasPrefix(strings.ToLower(opt), strings.ToLower(prefix)) {
                filtered = append(filtered, opt)
            }
        }
        options = filtered
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "options": options,
        "count":   len(options),
    })
}

func distinctValues(ds *models.Dataset, field func(models.Record) string) []string {
    seen := make(map[string]struct{})
    var values []string
    for _, rec := range ds.Records {
        v := field(rec)
        if v == "" {
            continue
        }
        if _, ok := seen[v]; ok {
            continue
        }
        seen[v] = struct{}{}
        values = append(values, v)
    }
    sort.Strings(values)
    return values
}
