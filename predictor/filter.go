package predictor

import (
    "github.com/lillybelle855/clg-predicter/models"
)

// ApplyFilters retains the records matching every non-empty dimension
// of the criteria (branch, district, affiliation region) and validates
// the selected caste/gender category against the dataset schema. The
// input dataset is never mutated; the returned snapshot shares its
// column and category lists.
func ApplyFilters(ds *models.Dataset, criteria *models.FilterCriteria) (*models.Dataset, error) {
    if !ds.HasCategory(criteria.Category) {
        return nil, &models.SchemaError{Column: criteria.Category}
    }

    branches := toSet(criteria.Branches)
    districts := toSet(criteria.Districts)
    regions := toSet(criteria.Regions)

    filtered := make([]models.Record, 0, len(ds.Records))
    for _, rec := range ds.Records {
        if len(branches) > 0 {
            if _, ok := branches[rec.BranchCode]; !ok {
                continue
            }
        }
        if len(districts) > 0 {
            if _, ok := districts[rec.District]; !ok {
                continue
            }
        }
        if len(regions) > 0 {
            if _, ok := regions[rec.AffReg]; !ok {
                continue
            }
        }
        filtered = append(filtered, rec)
    }

    return &models.Dataset{
        Records:    filtered,
        Columns:    ds.Columns,
        Categories: ds.Categories,
    }, nil
}

func toSet(values []string) map[string]struct{} {
    if len(values) == 0 {
        return nil
    }
    set := make(map[string]struct{}, len(values))
    for _, v := range values {
        set[v] = struct{}{}
    }
    return set
}
