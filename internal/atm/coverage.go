package atm

import (
	"github.com/twpayne/go-geom"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// Coverage is the geographic footprint of the network: a WGS84 bounding
// box plus the centroid of all ATM positions.
type Coverage struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
	CentroidLat  float64 `json:"centroid_latitude"`
	CentroidLng  float64 `json:"centroid_longitude"`
}

// ComputeCoverage derives the network bounding box and centroid. Returns
// false for an empty dataset, since an empty bounds has no meaningful
// coordinates.
func ComputeCoverage(atms []model.ATM) (Coverage, bool) {
	if len(atms) == 0 {
		return Coverage{}, false
	}

	bounds := geom.NewBounds(geom.XY)
	var sumLng, sumLat float64
	for _, a := range atms {
		bounds.Extend(geom.NewPointFlat(geom.XY, []float64{a.Longitude, a.Latitude}))
		sumLng += a.Longitude
		sumLat += a.Latitude
	}

	n := float64(len(atms))
	return Coverage{
		MinLatitude:  bounds.Min(1),
		MinLongitude: bounds.Min(0),
		MaxLatitude:  bounds.Max(1),
		MaxLongitude: bounds.Max(0),
		CentroidLat:  sumLat / n,
		CentroidLng:  sumLng / n,
	}, true
}
