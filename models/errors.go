package models

import "fmt"

// InvalidRankError means the query's target rank is missing or not a
// positive integer. The pipeline must not proceed to matching.
type InvalidRankError struct {
    Rank int
}

func (e *InvalidRankError) Error() string {
    return fmt.Sprintf("invalid rank %d: rank must be a positive integer", e.Rank)
}

// SchemaError means a required column, or the selected caste/gender
// category column, is not present in the dataset schema.
type SchemaError struct {
    Column string
}

func (e *SchemaError) Error() string {
    return fmt.Sprintf("dataset schema error: column %q not found", e.Column)
}
