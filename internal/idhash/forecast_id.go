// Package idhash computes deterministic record identifiers.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeForecastID computes a deterministic forecast_id using SHA256.
// Formula: SHA256(asset_id|horizon_years|paths|steps_per_year|seed)
// Returns hex-encoded hash (64 characters). Re-running the same asset with
// the same configuration and seed yields the same ID, which lets the
// append-only forecast store deduplicate naturally.
func ComputeForecastID(assetID string, horizonYears, paths, stepsPerYear int, seed int64) string {
	data := fmt.Sprintf("%s|%d|%d|%d|%d",
		assetID,
		horizonYears,
		paths,
		stepsPerYear,
		seed,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
