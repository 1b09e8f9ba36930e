package atm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomarket-ma/atmboard/internal/model"
)

func TestComputeCoverageBoundsAndCentroid(t *testing.T) {
	atms := []model.ATM{
		{ID: "1", Latitude: 33.0, Longitude: -7.0},
		{ID: "2", Latitude: 35.0, Longitude: -5.0},
		{ID: "3", Latitude: 31.0, Longitude: -9.0},
	}
	cov, ok := ComputeCoverage(atms)
	require.True(t, ok)

	assert.Equal(t, 31.0, cov.MinLatitude)
	assert.Equal(t, 35.0, cov.MaxLatitude)
	assert.Equal(t, -9.0, cov.MinLongitude)
	assert.Equal(t, -5.0, cov.MaxLongitude)
	assert.InDelta(t, 33.0, cov.CentroidLat, 0.0001)
	assert.InDelta(t, -7.0, cov.CentroidLng, 0.0001)
}

func TestComputeCoverageEmpty(t *testing.T) {
	_, ok := ComputeCoverage(nil)
	assert.False(t, ok)
}

func TestComputeCoverageSinglePoint(t *testing.T) {
	cov, ok := ComputeCoverage([]model.ATM{{ID: "1", Latitude: 34.02, Longitude: -6.84}})
	require.True(t, ok)
	assert.Equal(t, cov.MinLatitude, cov.MaxLatitude)
	assert.Equal(t, cov.MinLongitude, cov.MaxLongitude)
	assert.Equal(t, 34.02, cov.CentroidLat)
}
