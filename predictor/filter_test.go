package predictor

import (
    "errors"
    "testing"

    "github.com/lillybelle855/clg-predicter/models"
)

func TestApplyFiltersBranch(t *testing.T) {
    ds := testDataset(
        record("A001", "CSE", "GTR", "AU", "10000"),
        record("A002", "ECE", "GTR", "AU", "12000"),
        record("A003", "CSE", "VSP", "SVU", "90000"),
    )

    filtered, err := ApplyFilters(ds, &models.FilterCriteria{
        Category:   "OC_BOYS",
        TargetRank: 30000,
        Branches:   []string{"CSE"},
    })
    if err != nil {
        t.Fatalf("ApplyFilters returned error: %v", err)
    }

    // Branch filtering ignores rank entirely
    if len(filtered.Records) != 2 {
        t.Fatalf("got %d records, want 2", len(filtered.Records))
    }
    for _, rec := range filtered.Records {
        if rec.BranchCode != "CSE" {
            t.Errorf("record %s has branch %s, want CSE", rec.InstCode, rec.BranchCode)
        }
    }
}

func TestApplyFiltersIntersection(t *testing.T) {
    ds := testDataset(
        record("B001", "CSE", "GTR", "AU", "10000"),
        record("B002", "CSE", "VSP", "AU", "12000"),
        record("B003", "CSE", "GTR", "SVU", "14000"),
        record("B004", "ECE", "GTR", "AU", "16000"),
    )

    tests := []struct {
        name     string
        criteria models.FilterCriteria
        want     []string
    }{
        {
            name: "district only",
            criteria: models.FilterCriteria{
                Category: "OC_BOYS", TargetRank: 1,
                Districts: []string{"GTR"},
            },
            want: []string{"B001", "B003", "B004"},
        },
        {
            name: "region only",
            criteria: models.FilterCriteria{
                Category: "OC_BOYS", TargetRank: 1,
                Regions: []string{"SVU"},
            },
            want: []string{"B003"},
        },
        {
            name: "all three dimensions",
            criteria: models.FilterCriteria{
                Category: "OC_BOYS", TargetRank: 1,
                Branches:  []string{"CSE"},
                Districts: []string{"GTR"},
                Regions:   []string{"AU"},
            },
            want: []string{"B001"},
        },
        {
            name: "multiple values per dimension",
            criteria: models.FilterCriteria{
                Category: "OC_BOYS", TargetRank: 1,
                Districts: []string{"GTR", "VSP"},
            },
            want: []string{"B001", "B002", "B003", "B004"},
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            filtered, err := ApplyFilters(ds, &tt.criteria)
            if err != nil {
                t.Fatalf("ApplyFilters returned error: %v", err)
            }
            if len(filtered.Records) != len(tt.want) {
                t.Fatalf("got %d records, want %d", len(filtered.Records), len(tt.want))
            }
            for i, rec := range filtered.Records {
                if rec.InstCode != tt.want[i] {
                    t.Errorf("record[%d] = %s, want %s", i, rec.InstCode, tt.want[i])
                }
            }
        })
    }
}

func TestApplyFiltersEmptyCriteria(t *testing.T) {
    ds := testDataset(
        record("C001", "CSE", "GTR", "AU", "10000"),
        record("C002", "ECE", "VSP", "SVU", "12000"),
    )

    filtered, err := ApplyFilters(ds, &models.FilterCriteria{
        Category:   "OC_BOYS",
        TargetRank: 30000,
    })
    if err != nil {
        t.Fatalf("ApplyFilters returned error: %v", err)
    }
    if len(filtered.Records) != len(ds.Records) {
        t.Errorf("empty filter sets restricted: got %d records, want %d",
            len(filtered.Records), len(ds.Records))
    }
}

func TestApplyFiltersUnknownCategory(t *testing.T) {
    ds := testDataset(record("D001", "CSE", "GTR", "AU", "10000"))

    _, err := ApplyFilters(ds, &models.FilterCriteria{
        Category:   "NO_SUCH_BOYS",
        TargetRank: 30000,
    })
    var schemaErr *models.SchemaError
    if !errors.As(err, &schemaErr) {
        t.Fatalf("got %v, want SchemaError", err)
    }
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
    ds := testDataset(
        record("E001", "CSE", "GTR", "AU", "10000"),
        record("E002", "ECE", "GTR", "AU", "12000"),
    )

    _, err := ApplyFilters(ds, &models.FilterCriteria{
        Category:   "OC_BOYS",
        TargetRank: 30000,
        Branches:   []string{"CSE"},
    })
    if err != nil {
        t.Fatalf("ApplyFilters returned error: %v", err)
    }

    if len(ds.Records) != 2 {
        t.Errorf("input dataset shrank to %d records", len(ds.Records))
    }
    if ds.Records[1].InstCode != "E002" {
        t.Errorf("input dataset reordered")
    }
}
