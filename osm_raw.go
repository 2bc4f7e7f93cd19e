package osmrouter

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OSMScanner is implemented by both osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// nodeRaw is a node as it has been scanned: not projected yet
type nodeRaw struct {
	ID   osm.NodeID
	Geom GeoPoint
}

// osmDataRaw is the whole document read into memory
type osmDataRaw struct {
	bounds *osm.Bounds
	nodes  []nodeRaw
	ways   []*wayRaw
}

// readOSMFile opens the file and scans it. Format is guessed by file extension.
func (parser *Parser) readOSMFile(ctx context.Context, filename string) (*osmDataRaw, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, loadError(err, "can't open file '%s'", filename)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".osm", ".xml":
		return parser.readOSM(ctx, file)
	case ".pbf":
		scanner := osmpbf.New(ctx, file, 4)
		defer scanner.Close()
		header, err := scanner.Header()
		if err != nil {
			return nil, loadError(err, "can't read PBF header of file '%s'", filename)
		}
		return parser.scanOSM(scanner, header.Bounds)
	default:
		return nil, loadError(nil, "file extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// readOSM scans XML document. Document is read twice: attributes check first, then scanning itself.
func (parser *Parser) readOSM(ctx context.Context, r io.Reader) (*osmDataRaw, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, loadError(err, "can't read document")
		}
		rs = bytes.NewReader(content)
	}
	err := checkAttributes(rs)
	if err != nil {
		return nil, err
	}
	// Seek document to start
	_, err = rs.Seek(0, io.SeekStart)
	if err != nil {
		return nil, loadError(err, "can't repeat seeking after attributes check")
	}
	scanner := osmxml.New(ctx, rs)
	defer scanner.Close()
	return parser.scanOSM(scanner, nil)
}

var (
	requiredAttributes = map[string][]string{
		"bounds": {"minlat", "minlon", "maxlat", "maxlon"},
		"node":   {"id", "lat", "lon"},
		"nd":     {"ref"},
	}
)

// checkAttributes makes sure that elements carry attributes which osmxml would silently decode as zero values otherwise
func checkAttributes(r io.Reader) error {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return loadError(err, "malformed document")
		}
		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		required, ok := requiredAttributes[element.Name.Local]
		if !ok {
			continue
		}
		for _, name := range required {
			if !hasAttribute(element, name) {
				return loadError(nil, "element '%s' has no '%s' attribute", element.Name.Local, name)
			}
		}
	}
}

func hasAttribute(element xml.StartElement, name string) bool {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}

// scanOSM collects bounds, nodes and highways in a single pass.
// Node references of ways are resolved later, so document order does not matter.
func (parser *Parser) scanOSM(scanner OSMScanner, bounds *osm.Bounds) (*osmDataRaw, error) {
	st := time.Now()
	data := osmDataRaw{
		bounds: bounds,
		nodes:  make([]nodeRaw, 0),
		ways:   make([]*wayRaw, 0),
	}
	skippedWays := 0
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Bounds:
			data.bounds = obj
		case *osm.Node:
			data.nodes = append(data.nodes, nodeRaw{
				ID:   obj.ID,
				Geom: GeoPoint{Lat: obj.Lat, Lon: obj.Lon},
			})
		case *osm.Way:
			if !obj.Tags.HasTag("highway") {
				skippedWays++
				continue
			}
			way := &wayRaw{
				ID:      obj.ID,
				Nodes:   make([]osm.NodeID, 0, len(obj.Nodes)),
				Surface: classifyWay(obj.Tags),
			}
			for _, wayNode := range obj.Nodes {
				way.Nodes = append(way.Nodes, wayNode.ID)
			}
			data.ways = append(data.ways, way)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, loadError(errors.Wrap(err, "Scanner error"), "malformed document")
	}
	parser.logger.Debug("Document has been scanned",
		zap.Int("nodes", len(data.nodes)),
		zap.Int("highways", len(data.ways)),
		zap.Int("skipped_ways", skippedWays),
		zap.Duration("elapsed", time.Since(st)),
	)
	return &data, nil
}
