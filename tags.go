package osmrouter

import (
	"github.com/paulmach/osm"
)

var (
	bicycleAllowedTags = map[string]struct{}{
		"yes":        {},
		"designated": {},
	}

	carSurfaceTags = map[string]struct{}{
		"asphalt": {},
		"":        {},
	}

	carHighwayTags = map[string]struct{}{
		"motorway":       {},
		"primary":        {},
		"primary_link":   {},
		"secondary":      {},
		"secondary_link": {},
		"tertiary":       {},
		"tertiary_link":  {},
		"residential":    {},
		"service":        {},
		"trunk":          {},
		"trunk_link":     {},
	}

	pedestrianHighwayTags = map[string]struct{}{
		"footway":       {},
		"pedestrian":    {},
		"residential":   {},
		"steps":         {},
		"living_street": {},
		"path":          {},
	}

	footAllowedTags = map[string]struct{}{
		"yes":         {},
		"designated":  {},
		"destination": {},
	}

	dirtSurfaceTags = map[string]struct{}{
		"gravel":        {},
		"unpaved":       {},
		"grass":         {},
		"ground":        {},
		"paving_stones": {},
		"sand":          {},
	}

	dirtHighwayTags = map[string]struct{}{
		"living_street": {},
		"track":         {},
		"path":          {},
		"bridleway":     {},
	}

	unspecifiedHighwayTags = map[string]struct{}{
		"unclassified": {},
		"yes":          {},
	}
)

func inTags(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

// classifyWay returns surface bitmask for way's tags.
// Every matching rule contributes its bit, so result is an union.
// Absent `surface` tag is treated as empty string.
func classifyWay(tags osm.Tags) SurfaceType {
	highway := tags.Find("highway")
	surface := tags.Find("surface")

	result := SURFACE_NONE
	if highway == "cycleway" || inTags(bicycleAllowedTags, tags.Find("bicycle")) {
		result |= SURFACE_BICYCLE
	}
	if inTags(carSurfaceTags, surface) && inTags(carHighwayTags, highway) {
		result |= SURFACE_CAR
	}
	if inTags(pedestrianHighwayTags, highway) || inTags(footAllowedTags, tags.Find("foot")) {
		result |= SURFACE_PEDESTRIAN
	}
	if inTags(dirtSurfaceTags, surface) || inTags(dirtHighwayTags, highway) {
		result |= SURFACE_DIRT
	}
	if inTags(unspecifiedHighwayTags, highway) {
		result |= SURFACE_UNSPECIFIED
	}
	return result
}
