package shared

import "github.com/jackc/pgx/v5/pgtype"

// NumericFloat converts a NUMERIC column value to a plain float64 for JSON
// transport. Every repository uses this single conversion so monetary
// values serialize the same way on every endpoint.
func NumericFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return 0
	}
	return v.Float64
}

// NumericFloatPtr converts a nullable NUMERIC column value, preserving NULL.
func NumericFloatPtr(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	f := NumericFloat(n)
	return &f
}
