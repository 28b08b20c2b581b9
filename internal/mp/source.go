package mp

import (
	"context"

	"github.com/ahmedawad/matselect/internal/types"
)

// Criteria describes a property search against the materials database.
// Nil fields impose no constraint; the adapter applies its own default
// stability ceiling when neither hull-energy bound is given.
type Criteria struct {
	Elements           []string
	MinBandGap         *float64
	MaxBandGap         *float64
	MinEnergyAboveHull *float64
	MaxEnergyAboveHull *float64
	CrystalSystems     []string
	Limit              int
}

// Source is the data-source capability the recommendation core depends on.
// The production implementation is *Client; tests substitute fakes.
type Source interface {
	// Search returns up to Criteria.Limit candidate materials matching the
	// given property constraints.
	Search(ctx context.Context, criteria Criteria) ([]types.MaterialRecord, error)
	// GetByID returns the detailed record for one material identifier,
	// failing with *NotFoundError when the identifier is absent.
	GetByID(ctx context.Context, materialID string) (*types.MaterialRecord, error)
	// CheckStatus probes the API for liveness and credential validity.
	CheckStatus(ctx context.Context) (bool, error)
}
