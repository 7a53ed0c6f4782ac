package domain

// ReturnPoint is one monthly fractional return observation for an asset.
// Corresponds to the return_series table in ClickHouse. Collaborators load
// these; the bootstrap model consumes the ordered series.
type ReturnPoint struct {
	AssetID     string
	PeriodStart int64   // Unix timestamp in milliseconds, month start
	Return      float64 // fractional return over the month
}
