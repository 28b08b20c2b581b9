package tradeoff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedawad/matselect/internal/mp"
	"github.com/ahmedawad/matselect/internal/recommend"
	"github.com/ahmedawad/matselect/internal/types"
)

type stubSource struct {
	records []types.MaterialRecord
}

func (s *stubSource) Search(context.Context, mp.Criteria) ([]types.MaterialRecord, error) {
	return s.records, nil
}

func (s *stubSource) GetByID(_ context.Context, id string) (*types.MaterialRecord, error) {
	return nil, &mp.NotFoundError{MaterialID: id}
}

func (s *stubSource) CheckStatus(context.Context) (bool, error) {
	return true, nil
}

func TestExplore(t *testing.T) {
	source := &stubSource{records: []types.MaterialRecord{
		{ID: "mp-1", Density: types.Float64Ptr(2.0)},
		{ID: "mp-2", Density: types.Float64Ptr(8.0)},
	}}
	engine, err := recommend.New(context.Background(), source, nil)
	require.NoError(t, err)

	objectives := types.Objectives{types.ObjectiveWeight}
	analysis, err := Explore(context.Background(), engine, types.RequirementSet{}, objectives)

	require.NoError(t, err)
	assert.Len(t, analysis.Materials, 2)
	assert.Equal(t, objectives, analysis.Objectives)
	// The lighter material wins under the weight objective.
	assert.Equal(t, "mp-1", analysis.Materials[0].ID)
}

func TestParetoFrontier_NotImplemented(t *testing.T) {
	analysis := &Analysis{}
	_, err := analysis.ParetoFrontier()
	assert.ErrorIs(t, err, ErrNotImplemented)
}
