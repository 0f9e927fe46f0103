package colorimetry

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCRIBatch(t *testing.T) {
	lights := []Illuminant{D50(), D65(), A(), Planckian(3000)}

	got, err := ComputeCRIBatch(context.Background(), lights, 2)
	require.NoError(t, err)
	require.Len(t, got, len(lights))

	// Batch results agree with the sequential computation per source.
	for i, light := range lights {
		want, err := ComputeCRI(light)
		require.NoError(t, err)
		assert.Equal(t, want.Samples(), got[i].Samples(), "source %d", i)
	}
}

func TestComputeCRIBatchDefaultLimit(t *testing.T) {
	got, err := ComputeCRIBatch(context.Background(), []Illuminant{D65(), A()}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestComputeCRIBatchEmpty(t *testing.T) {
	got, err := ComputeCRIBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeCRIBatchError(t *testing.T) {
	lights := []Illuminant{D65(), A(), NewIlluminant(Spectrum{})}

	got, err := ComputeCRIBatch(context.Background(), lights, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSpectrum)
	assert.True(t, strings.Contains(err.Error(), "source 2"), err.Error())
	assert.Nil(t, got)
}

func TestComputeCRIBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ComputeCRIBatch(ctx, []Illuminant{D65(), A()}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
