package predictor

import (
    "sort"

    "github.com/lillybelle855/clg-predicter/models"
    "github.com/lillybelle855/clg-predicter/utils"
)

// The eligibility window around a candidate's rank: admission chances
// extend a little below their own rank and well above it.
const (
    WindowBelow = 5000
    WindowAbove = 25000
)

// Window returns the inclusive cutoff-rank window for a target rank.
// The lower bound never goes negative.
func Window(targetRank int) (lower, upper int) {
    lower = targetRank - WindowBelow
    if lower < 0 {
        lower = 0
    }
    return lower, targetRank + WindowAbove
}

// Match retains the records whose cutoff under the selected category
// falls inside the eligibility window, sorted ascending by cutoff rank
// (stable on ties, so source order decides). Rows whose cutoff cell is
// blank or non-numeric are dropped silently; the second return value
// reports how many were dropped that way.
func Match(ds *models.Dataset, category string, targetRank int) (*models.ResultSet, int, error) {
    if targetRank <= 0 {
        return nil, 0, &models.InvalidRankError{Rank: targetRank}
    }
    if !ds.HasCategory(category) {
        return nil, 0, &models.SchemaError{Column: category}
    }

    lower, upper := Window(targetRank)

    type match struct {
        rec  models.Record
        rank int
    }

    matches := make([]match, 0, len(ds.Records))
    dropped := 0
    for _, rec := range ds.Records {
        rank, ok := utils.ParseRank(rec.RankText(category))
        if !ok {
            dropped++
            continue
        }
        if rank >= lower && rank <= upper {
            matches = append(matches, match{rec: rec, rank: rank})
        }
    }

    sort.SliceStable(matches, func(i, j int) bool {
        return matches[i].rank < matches[j].rank
    })

    rows := make([][]string, 0, len(matches))
    for _, m := range matches {
        rows = append(rows, m.rec.ProjectedRow(category))
    }

    return &models.ResultSet{
        Category: category,
        Columns:  models.ResultColumns(category),
        Rows:     rows,
    }, dropped, nil
}

// Predict runs the full query pipeline: categorical filters first,
// then range matching on the survivors.
func Predict(ds *models.Dataset, criteria *models.FilterCriteria) (*models.ResultSet, int, error) {
    filtered, err := ApplyFilters(ds, criteria)
    if err != nil {
        return nil, 0, err
    }
    return Match(filtered, criteria.Category, criteria.TargetRank)
}
