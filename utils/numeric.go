package utils

import (
    "strconv"
    "strings"
)

// ParseRank coerces a raw cutoff cell to a rank. Spreadsheet exports
// carry ranks as plain integers ("35000") or floats ("35000.0"), often
// with stray whitespace or thousands separators. A blank, non-numeric
// or negative cell means the cutoff is absent and the row is skipped.
func ParseRank(cell string) (int, bool) {
    cell = strings.TrimSpace(cell)
    cell = strings.ReplaceAll(cell, ",", "")
    if cell == "" {
        return 0, false
    }

    if v, err := strconv.Atoi(cell); err == nil {
        if v < 0 {
            return 0, false
        }
        return v, true
    }

    f, err := strconv.ParseFloat(cell, 64)
    if err != nil || f < 0 {
        return 0, false
    }
    return int(f), true
}
