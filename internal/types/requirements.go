package types

import (
	"github.com/go-playground/validator/v10"
)

// RequirementSet enumerates every requirement key the system recognizes.
// All fields are optional; a nil field imposes no constraint.
//
// Not every key currently affects filtering or scoring. The ones that do not
// are still accepted so requirement files stay forward-compatible, but they
// are explicitly marked inert below rather than silently ignored.
//
//   - MaxDensity: active, hard filter (density ceiling, g/cm³)
//   - MinBandGap: active, scoring target for band-gap proximity (eV)
//   - MaxBandGap: active, search pre-filter only (eV)
//   - Elements:   active, search pre-filter allow-list
//   - MinStrength: inert (needs mechanical-property data source)
//   - MaxTemp: inert (needs temperature-stability data source)
//   - MaxCostPerKg: inert (needs cost database)
//   - CorrosionResistance: inert (needs corrosion data source)
type RequirementSet struct {
	MinStrength         *float64 `json:"min_strength,omitempty" validate:"omitempty,gt=0"`
	MaxDensity          *float64 `json:"max_density,omitempty" validate:"omitempty,gt=0"`
	MaxTemp             *float64 `json:"max_temp,omitempty"`
	MaxCostPerKg        *float64 `json:"max_cost_per_kg,omitempty" validate:"omitempty,gt=0"`
	MinBandGap          *float64 `json:"min_band_gap,omitempty" validate:"omitempty,gte=0"`
	MaxBandGap          *float64 `json:"max_band_gap,omitempty" validate:"omitempty,gte=0"`
	CorrosionResistance string   `json:"corrosion_resistance,omitempty"`
	Elements            []string `json:"elements,omitempty" validate:"omitempty,dive,min=1,max=2"`
}

// Validate checks field ranges and cross-field consistency.
func (r *RequirementSet) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.MinBandGap != nil && r.MaxBandGap != nil && *r.MinBandGap > *r.MaxBandGap {
		return &RequirementError{Field: "min_band_gap", Message: "min_band_gap exceeds max_band_gap"}
	}
	return nil
}

// RequirementError represents an invalid requirement value.
type RequirementError struct {
	Field   string
	Message string
}

func (e *RequirementError) Error() string {
	return "invalid requirement " + e.Field + ": " + e.Message
}

// Objective names an optimization goal the caller wants the ranking to favor.
type Objective string

// Recognized objectives. Only ObjectiveWeight currently contributes a scoring
// term; cost and strength are accepted but inert until their data sources
// exist (mirrors the inert RequirementSet keys).
const (
	ObjectiveCost     Objective = "cost"
	ObjectiveWeight   Objective = "weight"
	ObjectiveStrength Objective = "strength"
)

// Objectives is a set of optimization objectives. Order carries no meaning;
// each present objective toggles an independent additive scoring term.
type Objectives []Objective

// Has reports whether the named objective is present.
func (o Objectives) Has(obj Objective) bool {
	for _, v := range o {
		if v == obj {
			return true
		}
	}
	return false
}

// ParseObjectives converts raw strings into Objectives, rejecting names the
// system does not recognize.
func ParseObjectives(raw []string) (Objectives, error) {
	objs := make(Objectives, 0, len(raw))
	for _, s := range raw {
		switch Objective(s) {
		case ObjectiveCost, ObjectiveWeight, ObjectiveStrength:
			objs = append(objs, Objective(s))
		default:
			return nil, &RequirementError{Field: "objectives", Message: "unknown objective: " + s}
		}
	}
	return objs, nil
}
