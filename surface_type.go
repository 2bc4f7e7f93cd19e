package osmrouter

import (
	"strings"

	"github.com/pkg/errors"
)

// SurfaceType is a bitset classifying way (or edge) by traversal suitability
type SurfaceType uint8

const (
	SURFACE_UNSPECIFIED = SurfaceType(1 << iota)
	SURFACE_PEDESTRIAN
	SURFACE_DIRT
	SURFACE_CAR
	SURFACE_BICYCLE

	SURFACE_NONE = SurfaceType(0)
	SURFACE_ANY  = SURFACE_UNSPECIFIED | SURFACE_PEDESTRIAN | SURFACE_DIRT | SURFACE_CAR | SURFACE_BICYCLE
)

var surfaceNames = [...]string{"unspecified", "pedestrian", "dirt", "car", "bicycle"}

// Has checks if every bit of other is set
func (surface SurfaceType) Has(other SurfaceType) bool {
	return surface&other == other
}

// Intersects checks if at least one bit is shared with other
func (surface SurfaceType) Intersects(other SurfaceType) bool {
	return surface&other != 0
}

func (surface SurfaceType) String() string {
	if surface == SURFACE_NONE {
		return "none"
	}
	names := make([]string, 0, len(surfaceNames))
	for i, name := range surfaceNames {
		if surface&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// ParseSurfaceType parses comma (or '|') separated surface names, e.g. "bicycle,dirt".
// "any" stands for every surface.
func ParseSurfaceType(str string) (SurfaceType, error) {
	result := SURFACE_NONE
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == '|'
	})
	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "any" {
			result |= SURFACE_ANY
			continue
		}
		found := false
		for i := range surfaceNames {
			if surfaceNames[i] == name {
				result |= SurfaceType(1 << uint(i))
				found = true
				break
			}
		}
		if !found {
			return SURFACE_NONE, errors.Errorf("Unknown surface type '%s'", name)
		}
	}
	if result == SURFACE_NONE {
		return SURFACE_NONE, errors.Errorf("No surface types in '%s'", str)
	}
	return result, nil
}
