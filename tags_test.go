package osmrouter

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestClassifyWay(t *testing.T) {
	tests := []struct {
		name     string
		tags     osm.Tags
		expected SurfaceType
	}{
		{"cycleway", osm.Tags{{Key: "highway", Value: "cycleway"}}, SURFACE_BICYCLE},
		{"bicycle designated", osm.Tags{{Key: "highway", Value: "footway"}, {Key: "bicycle", Value: "designated"}}, SURFACE_BICYCLE | SURFACE_PEDESTRIAN},
		{"bicycle no", osm.Tags{{Key: "highway", Value: "footway"}, {Key: "bicycle", Value: "no"}}, SURFACE_PEDESTRIAN},
		{"primary without surface", osm.Tags{{Key: "highway", Value: "primary"}}, SURFACE_CAR},
		{"primary asphalt", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "surface", Value: "asphalt"}}, SURFACE_CAR},
		{"primary gravel", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "surface", Value: "gravel"}}, SURFACE_DIRT},
		{"primary concrete", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "surface", Value: "concrete"}}, SURFACE_NONE},
		{"residential", osm.Tags{{Key: "highway", Value: "residential"}}, SURFACE_CAR | SURFACE_PEDESTRIAN},
		{"living street", osm.Tags{{Key: "highway", Value: "living_street"}}, SURFACE_PEDESTRIAN | SURFACE_DIRT},
		{"path", osm.Tags{{Key: "highway", Value: "path"}}, SURFACE_PEDESTRIAN | SURFACE_DIRT},
		{"track", osm.Tags{{Key: "highway", Value: "track"}}, SURFACE_DIRT},
		{"service with foot", osm.Tags{{Key: "highway", Value: "service"}, {Key: "foot", Value: "destination"}}, SURFACE_CAR | SURFACE_PEDESTRIAN},
		{"unclassified", osm.Tags{{Key: "highway", Value: "unclassified"}}, SURFACE_UNSPECIFIED},
		{"highway yes on sand", osm.Tags{{Key: "highway", Value: "yes"}, {Key: "surface", Value: "sand"}}, SURFACE_UNSPECIFIED | SURFACE_DIRT},
		{"motorway_link is not a car road", osm.Tags{{Key: "highway", Value: "motorway_link"}}, SURFACE_NONE},
		{
			"everything",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "bicycle", Value: "yes"}, {Key: "surface", Value: "asphalt"}},
			SURFACE_BICYCLE | SURFACE_CAR | SURFACE_PEDESTRIAN,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWay(tt.tags)
			if got != tt.expected {
				t.Errorf("Surface must be '%s', but got '%s'", tt.expected, got)
			}
		})
	}
}
