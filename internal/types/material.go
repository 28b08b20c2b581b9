// Package types provides type definitions for structured data used throughout the matselect system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaterialRecord represents one candidate material as returned by the
// Materials Project database.
//
// Optional numeric fields are pointers: nil means the database did not report
// a value, and downstream filtering/scoring must branch on that explicitly.
// Detailed fields (Volume, BulkModulus, ShearModulus, YoungsModulus) are only
// populated on per-ID lookups, never on bulk searches.
type MaterialRecord struct {
	ID              string   `json:"mp_id"`
	Formula         string   `json:"formula"`
	Composition     string   `json:"composition,omitempty"`
	EnergyAboveHull float64  `json:"energy_above_hull"`
	BandGap         *float64 `json:"band_gap,omitempty"`
	Density         *float64 `json:"density,omitempty"`
	FormationEnergy *float64 `json:"formation_energy,omitempty"`
	CrystalSystem   string   `json:"crystal_system,omitempty"`
	SpaceGroup      string   `json:"space_group,omitempty"`
	IsStable        bool     `json:"is_stable"`
	IsTheoretical   bool     `json:"is_theoretical"`

	// Detailed-only fields
	Volume        *float64 `json:"volume,omitempty"`
	BulkModulus   *float64 `json:"bulk_modulus,omitempty"`
	ShearModulus  *float64 `json:"shear_modulus,omitempty"`
	YoungsModulus *float64 `json:"youngs_modulus,omitempty"`
}

// Normalize clamps malformed field values in place. Energy above hull is
// non-negative by definition of the metric, so negative values from a
// misbehaving source are clamped to zero rather than rejected.
func (m *MaterialRecord) Normalize() {
	if m.EnergyAboveHull < 0 {
		m.EnergyAboveHull = 0
	}
}

// Float64Ptr returns a pointer to v. Convenience for building records with
// optional fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
