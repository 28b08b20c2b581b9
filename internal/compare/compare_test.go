package compare

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedawad/matselect/internal/mp"
	"github.com/ahmedawad/matselect/internal/types"
)

// fakeSource serves detail lookups from a fixed map, with optional per-ID
// delays to exercise out-of-order completion.
type fakeSource struct {
	records map[string]types.MaterialRecord
	delays  map[string]time.Duration
	err     error
}

func (f *fakeSource) Search(context.Context, mp.Criteria) ([]types.MaterialRecord, error) {
	return nil, nil
}

func (f *fakeSource) GetByID(_ context.Context, materialID string) (*types.MaterialRecord, error) {
	if d, ok := f.delays[materialID]; ok {
		time.Sleep(d)
	}
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[materialID]
	if !ok {
		return nil, &mp.NotFoundError{MaterialID: materialID}
	}
	return &record, nil
}

func (f *fakeSource) CheckStatus(context.Context) (bool, error) {
	return true, nil
}

func material(id string, density, bandGap, formationEnergy float64) types.MaterialRecord {
	return types.MaterialRecord{
		ID:              id,
		Density:         types.Float64Ptr(density),
		BandGap:         types.Float64Ptr(bandGap),
		FormationEnergy: types.Float64Ptr(formationEnergy),
	}
}

func TestCompare_DeltasAgainstBaseline(t *testing.T) {
	source := &fakeSource{records: map[string]types.MaterialRecord{
		"mp-1": material("mp-1", 4.0, 2.0, -1.0),
		"mp-2": material("mp-2", 5.0, 1.0, -2.0),
	}}
	comparator := New(source, nil)

	rows, err := comparator.Compare(context.Background(), "mp-1", []string{"mp-2"})

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].IsBaseline)
	assert.Nil(t, rows[0].DensityDelta)

	require.NotNil(t, rows[1].DensityDelta)
	assert.InDelta(t, 25.0, *rows[1].DensityDelta, 1e-9)
	require.NotNil(t, rows[1].BandGapDelta)
	assert.InDelta(t, -50.0, *rows[1].BandGapDelta, 1e-9)
	require.NotNil(t, rows[1].FormationEnergyDelta)
	assert.InDelta(t, 100.0, *rows[1].FormationEnergyDelta, 1e-9)
}

func TestCompare_SelfComparisonYieldsZeroDelta(t *testing.T) {
	source := &fakeSource{records: map[string]types.MaterialRecord{
		"mp-149": material("mp-149", 7.0, 1.1, -0.5),
	}}
	comparator := New(source, nil)

	rows, err := comparator.Compare(context.Background(), "mp-149", []string{"mp-149"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[1].DensityDelta)
	assert.Equal(t, 0.0, *rows[1].DensityDelta)
}

func TestCompare_NotFoundSkippedWithWarning(t *testing.T) {
	source := &fakeSource{records: map[string]types.MaterialRecord{
		"mp-1": material("mp-1", 4.0, 2.0, -1.0),
		"mp-3": material("mp-3", 6.0, 0.5, -0.2),
	}}
	var warnings bytes.Buffer
	comparator := New(source, &warnings)

	rows, err := comparator.Compare(context.Background(), "mp-1", []string{"mp-missing", "mp-3"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "mp-1", rows[0].ID)
	assert.Equal(t, "mp-3", rows[1].ID)
	assert.Contains(t, warnings.String(), "mp-missing not found")
}

func TestCompare_OtherErrorsPropagate(t *testing.T) {
	source := &fakeSource{err: errors.New("service unavailable")}
	comparator := New(source, nil)

	_, err := comparator.Compare(context.Background(), "mp-1", []string{"mp-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service unavailable")
}

func TestCompare_ZeroBaselineValueGivesNilDelta(t *testing.T) {
	baseline := material("metal", 4.0, 0.0, -1.0) // metallic: band gap 0
	alt := material("semi", 5.0, 1.5, -2.0)
	source := &fakeSource{records: map[string]types.MaterialRecord{
		"metal": baseline,
		"semi":  alt,
	}}
	comparator := New(source, nil)

	rows, err := comparator.Compare(context.Background(), "metal", []string{"semi"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[1].BandGapDelta, "division by zero baseline must be reported as absent")
	assert.NotNil(t, rows[1].DensityDelta)
}

func TestCompare_OrderMatchesInputRegardlessOfCompletion(t *testing.T) {
	source := &fakeSource{
		records: map[string]types.MaterialRecord{
			"slow": material("slow", 4.0, 1.0, -1.0),
			"mid":  material("mid", 5.0, 1.0, -1.0),
			"fast": material("fast", 6.0, 1.0, -1.0),
		},
		delays: map[string]time.Duration{
			"slow": 30 * time.Millisecond,
			"mid":  10 * time.Millisecond,
		},
	}
	comparator := New(source, nil)

	rows, err := comparator.Compare(context.Background(), "slow", []string{"mid", "fast"})

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "slow", rows[0].ID)
	assert.Equal(t, "mid", rows[1].ID)
	assert.Equal(t, "fast", rows[2].ID)
}

func TestCompare_SingleRowHasNoDeltas(t *testing.T) {
	source := &fakeSource{records: map[string]types.MaterialRecord{
		"mp-1": material("mp-1", 4.0, 2.0, -1.0),
	}}
	comparator := New(source, nil)

	rows, err := comparator.Compare(context.Background(), "mp-1", nil)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].DensityDelta)
}
