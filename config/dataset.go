package config

import (
    "encoding/csv"
    "fmt"
    "log"
    "os"
    "sort"
    "strings"
    "time"

    "github.com/lillybelle855/clg-predicter/models"
)

// The loaded cutoff snapshot. Written once during startup, read-only
// afterwards; every query works against the same immutable value.
var dataset *models.Dataset

// GetDataset returns the active cutoff snapshot.
func GetDataset() *models.Dataset {
    return dataset
}

// SetDataset replaces the active snapshot. Used by the loaders and by
// tests that need a fixture dataset.
func SetDataset(ds *models.Dataset) {
    dataset = ds
}

// LoadDataset loads the cutoff table from the configured source and
// installs it as the active snapshot.
func LoadDataset() error {
    var (
        ds  *models.Dataset
        err error
    )

    switch source := DatasetSource(); source {
    case "postgres":
        ds, err = loadFromPostgres()
    case "csv":
        ds, err = loadFromCSV(DatasetPath())
    default:
        return fmt.Errorf("unknown DATASET_SOURCE %q (want csv or postgres)", source)
    }
    if err != nil {
        return err
    }

    SetDataset(ds)
    log.Printf("Loaded cutoff dataset: %d records, %d columns, %d rank categories",
        len(ds.Records), len(ds.Columns), len(ds.Categories))
    return nil
}

// LoadDatasetWithRetry retries the load, mainly for the Postgres
// source where the database may still be coming up.
func LoadDatasetWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = LoadDataset()
        if err == nil {
            return nil
        }
        log.Printf("Failed to load dataset (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(time.Duration(getEnvAsInt("DATASET_RETRY_DELAY_SECONDS", 5)) * time.Second)
    }
    return fmt.Errorf("failed to load dataset after %d attempts: %v", maxRetries, err)
}

// loadFromCSV reads the cutoff table from a CSV export. The first row
// is the header; header names are whitespace-trimmed.
func loadFromCSV(path string) (*models.Dataset, error) {
    file, err := os.Open(path)
    if err != nil {
        return nil, fmt.Errorf("error opening dataset file: %v", err)
    }
    defer file.Close()

    reader := csv.NewReader(file)
    reader.FieldsPerRecord = -1

    rows, err := reader.ReadAll()
    if err != nil {
        return nil, fmt.Errorf("error reading dataset file %s: %v", path, err)
    }
    if len(rows) == 0 {
        return nil, fmt.Errorf("dataset file %s is empty", path)
    }

    header := make([]string, len(rows[0]))
    for i, h := range rows[0] {
        header[i] = strings.TrimSpace(h)
    }

    return buildDataset(header, rows[1:])
}

// buildDataset turns a header plus raw rows into a validated snapshot.
// Shared by the CSV and Postgres loaders.
func buildDataset(header []string, rows [][]string) (*models.Dataset, error) {
    index := make(map[string]int, len(header))
    for i, col := range header {
        if _, dup := index[col]; dup {
            // A repeated column would silently shadow its twin and,
            // for rank columns, show up twice in Categories.
            return nil, &models.SchemaError{Column: col}
        }
        index[col] = i
    }

    for _, required := range models.RequiredColumns {
        if _, ok := index[required]; !ok {
            return nil, &models.SchemaError{Column: required}
        }
    }

    var categories []string
    for _, col := range header {
        if models.IsRankColumn(col) {
            categories = append(categories, col)
        }
    }
    if len(categories) == 0 {
        return nil, fmt.Errorf("dataset has no caste/gender rank columns (*_BOYS / *_GIRLS)")
    }
    sort.Strings(categories)

    cell := func(row []string, col string) string {
        i := index[col]
        if i >= len(row) {
            return ""
        }
        return strings.TrimSpace(row[i])
    }

    records := make([]models.Record, 0, len(rows))
    for _, row := range rows {
        rec := models.Record{
            InstCode:   cell(row, models.ColInstCode),
            Name:       cell(row, models.ColName),
            InstReg:    cell(row, models.ColInstReg),
            District:   cell(row, models.ColDistrict),
            AffReg:     cell(row, models.ColAffReg),
            BranchCode: cell(row, models.ColBranchCode),
            Place:      cell(row, models.ColPlace),
            Fee:        cell(row, models.ColFee),
            Ranks:      make(map[string]string, len(categories)),
        }
        for _, cat := range categories {
            rec.Ranks[cat] = cell(row, cat)
        }
        records = append(records, rec)
    }

    return &models.Dataset{
        Records:    records,
        Columns:    header,
        Categories: categories,
    }, nil
}
