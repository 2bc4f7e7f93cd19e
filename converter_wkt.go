package osmrouter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// WKT returns WKT representation of the path in geographic coordinates
func (path Path) WKT() string {
	pts := path.GeoPoints()
	if len(pts) == 1 {
		return PrepareWKTPoint(pts[0])
	}
	return PrepareWKTLinestring(pts)
}

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []GeoPoint) string {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = orb.Point{pts[i].Lon, pts[i].Lat}
	}
	return wkt.MarshalString(line)
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt GeoPoint) string {
	return wkt.MarshalString(orb.Point{pt.Lon, pt.Lat})
}
