package models

import (
    "sort"
    "strings"
)

// Column names as they appear in the cutoff table header.
const (
    ColInstCode   = "INSTCODE"
    ColName       = "NAME OF THE INSTITUTION"
    ColInstReg    = "INST_REG"
    ColDistrict   = "DIST"
    ColAffReg     = "A_REG"
    ColBranchCode = "branch_code"
    ColPlace      = "PLACE"
    ColFee        = "COLLFEE"
)

// RequiredColumns must all be present in a loaded dataset.
var RequiredColumns = []string{
    ColInstCode,
    ColName,
    ColInstReg,
    ColDistrict,
    ColAffReg,
    ColBranchCode,
    ColPlace,
    ColFee,
}

// Record is one institution/branch offering from the cutoff table.
// Ranks holds the raw cell text per caste/gender category; a blank or
// non-numeric cell means the cutoff is absent for that category.
type Record struct {
    InstCode   string            `json:"instcode"`
    Name       string            `json:"name"`
    InstReg    string            `json:"inst_reg"`
    District   string            `json:"dist"`
    AffReg     string            `json:"a_reg"`
    BranchCode string            `json:"branch_code"`
    Place      string            `json:"place"`
    Fee        string            `json:"collfee"`
    Ranks      map[string]string `json:"ranks,omitempty"`
}

// RankText returns the raw cutoff cell for a category, trimmed.
func (r Record) RankText(category string) string {
    return strings.TrimSpace(r.Ranks[category])
}

// ProjectedRow lays the record out in the fixed display projection,
// with the selected category's cutoff between PLACE and COLLFEE.
func (r Record) ProjectedRow(category string) []string {
    return []string{
        r.InstCode,
        r.Name,
        r.InstReg,
        r.District,
        r.AffReg,
        r.BranchCode,
        r.Place,
        r.RankText(category),
        r.Fee,
    }
}

// ResultColumns is the display projection for a query under the given
// caste/gender category, in render order.
func ResultColumns(category string) []string {
    return []string{
        ColInstCode,
        ColName,
        ColInstReg,
        ColDistrict,
        ColAffReg,
        ColBranchCode,
        ColPlace,
        category,
        ColFee,
    }
}

// Dataset is an immutable snapshot of the cutoff table, loaded once at
// startup. Records keep their source order; Categories is the set of
// caste/gender rank columns discovered from the header.
type Dataset struct {
    Records    []Record
    Columns    []string
    Categories []string
}

// HasCategory reports whether name is a known caste/gender rank column.
func (d *Dataset) HasCategory(name string) bool {
    for _, c := range d.Categories {
        if c == name {
            return true
        }
    }
    return false
}

// IsRankColumn reports whether a header column holds caste/gender
// cutoff ranks, following the <CASTE>_BOYS / <CASTE>_GIRLS convention.
func IsRankColumn(name string) bool {
    return strings.HasSuffix(name, "_BOYS") || strings.HasSuffix(name, "_GIRLS")
}

// SortedCategories returns the discovered rank columns in sorted order,
// the order the selection surface presents them in.
func (d *Dataset) SortedCategories() []string {
    out := make([]string, len(d.Categories))
    copy(out, d.Categories)
    sort.Strings(out)
    return out
}

// FilterCriteria is one user query. Empty slices mean the dimension is
// unconstrained.
type FilterCriteria struct {
    Category   string   `json:"category"`
    TargetRank int      `json:"rank"`
    Branches   []string `json:"branches,omitempty"`
    Districts  []string `json:"districts,omitempty"`
    Regions    []string `json:"regions,omitempty"`
}

// ResultSet is the ordered outcome of a prediction query, already
// sorted ascending by the selected category's cutoff rank. Rows are
// aligned with Columns.
type ResultSet struct {
    Category string     `json:"category"`
    Columns  []string   `json:"columns"`
    Rows     [][]string `json:"rows"`
}

// Len returns the number of matched records.
func (rs *ResultSet) Len() int {
    return len(rs.Rows)
}
