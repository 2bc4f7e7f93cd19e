package osmrouter

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

func geoPointsToCoordinates(pts []GeoPoint) [][]float64 {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	return pts2d
}

// WaysGeoJSON returns GeoJSON FeatureCollection of highways. Every feature carries 'way_id' and 'surface' properties.
func (m *Map) WaysGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, way := range m.ways {
		if len(way.nodes) < 2 {
			continue
		}
		feature := geojson.NewLineStringFeature(geoPointsToCoordinates(way.GeoPoints()))
		feature.SetProperty("way_id", int64(way.ID))
		feature.SetProperty("surface", way.Surface.String())
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't convert ways to GeoJSON")
	}
	return b, nil
}

// GeoJSON returns GeoJSON LineString geometry of the path (Point geometry for single node path)
func (path Path) GeoJSON() ([]byte, error) {
	pts := path.GeoPoints()
	var geom *geojson.Geometry
	switch len(pts) {
	case 0:
		return nil, errors.New("Can't convert empty path to GeoJSON")
	case 1:
		geom = geojson.NewPointGeometry([]float64{pts[0].Lon, pts[0].Lat})
	default:
		geom = geojson.NewLineStringGeometry(geoPointsToCoordinates(pts))
	}
	b, err := geom.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't convert path to GeoJSON")
	}
	return b, nil
}
