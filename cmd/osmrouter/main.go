package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/LdDl/osmrouter"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	osmFileName   = flag.String("file", "map.osm", "Filename of *.osm (XML) or *.osm.pbf file")
	width         = flag.Float64("width", 1024, "Viewport width (pixels)")
	height        = flag.Float64("height", 768, "Viewport height (pixels)")
	fromStr       = flag.String("from", "", "Source point in pixels, e.g. '120.5,300'")
	toStr         = flag.String("to", "", "Target point in pixels, e.g. '640,200'")
	surfaceStr    = flag.String("surface", "bicycle", "Allowed surfaces (separated by commas). Expected values: unspecified / pedestrian / dirt / car / bicycle / any")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	cellSize      = flag.Float64("cell", osmrouter.DEFAULT_CELL_SIZE, "Size of spatial index cell (pixels)")
	maxIterations = flag.Int("maxiter", 0, "Max number of path search iterations (0 means no limit)")
	timeout       = flag.Duration("timeout", 0, "Path search timeout (0 means no timeout)")
	out           = flag.String("out", "", "Filename of 'Comma-Separated Values' (CSV) formatted file for exporting routing graph. E.g.: if file name is 'map.csv' then 3 files will be produced: 'map.csv' (edges), 'map_vertices.csv', 'map_shortcuts.csv'")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies for exported graph?")
	verbose       = flag.Bool("verbose", false, "Print map building stages")
)

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	defer logger.Sync()

	allowed, err := osmrouter.ParseSurfaceType(*surfaceStr)
	if err != nil {
		logger.Fatal("Bad surface flag", zap.Error(err))
	}

	st := time.Now()
	m, err := osmrouter.LoadMap(context.Background(), *osmFileName, *width, *height,
		osmrouter.WithCellSize(*cellSize),
		osmrouter.WithMaxIterations(*maxIterations),
		osmrouter.WithLogger(logger),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	logger.Info("Map has been loaded",
		zap.Int("nodes", m.NodesNum()),
		zap.Int("ways", len(m.Ways())),
		zap.Int("edges", m.Graph().EdgesNum()),
		zap.Duration("elapsed", time.Since(st)),
	)

	if *out != "" {
		err = exportGraph(m, *out, *doContraction)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if *fromStr == "" || *toStr == "" {
		return
	}
	err = route(m, *fromStr, *toStr, allowed)
	switch {
	case err == nil:
	case errors.Is(err, osmrouter.ErrNodeNotFound):
		fmt.Printf("No road near the point: %s\n", err)
		os.Exit(2)
	case errors.Is(err, osmrouter.ErrNoPath):
		fmt.Printf("No route: %s\n", err)
		os.Exit(3)
	case errors.Is(err, osmrouter.ErrSearchLimit), errors.Is(err, context.DeadlineExceeded):
		fmt.Printf("Route search aborted: %s\n", err)
		os.Exit(4)
	default:
		fmt.Println(err)
		os.Exit(1)
	}
}

func route(m *osmrouter.Map, fromStr, toStr string, allowed osmrouter.SurfaceType) error {
	fromPt, err := parsePoint(fromStr)
	if err != nil {
		return err
	}
	toPt, err := parsePoint(toStr)
	if err != nil {
		return err
	}
	source, err := m.NearestNode(fromPt)
	if err != nil {
		return errors.Wrap(err, "Source")
	}
	target, err := m.NearestNode(toPt)
	if err != nil {
		return errors.Wrap(err, "Target")
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	path, err := m.FindPath(ctx, source, target, allowed)
	if err != nil {
		return err
	}

	geomStr := ""
	if strings.ToLower(*geomFormat) == "geojson" {
		b, err := path.GeoJSON()
		if err != nil {
			return err
		}
		geomStr = string(b)
	} else {
		geomStr = path.WKT()
	}
	fmt.Printf("Nodes: %d\nLength: %f km (%f px)\n%s\n", len(path.Nodes), path.GeoLength(), path.Length(), geomStr)
	return nil
}

func parsePoint(str string) (orb.Point, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("Point should be 'x,y', got '%s'", str)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "Bad X in '%s'", str)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "Bad Y in '%s'", str)
	}
	return orb.Point{x, y}, nil
}

func exportGraph(m *osmrouter.Map, out string, doContraction bool) error {
	fnamePart := strings.Split(out, ".csv") // to guarantee proper filename and its extension
	fnameEdges := fnamePart[0] + ".csv"
	fnameVertices := fnamePart[0] + "_vertices.csv"
	fnameShortcuts := fnamePart[0] + "_shortcuts.csv"

	/* Edges file */
	fileEdges, err := os.Create(fnameEdges)
	if err != nil {
		return errors.Wrap(err, "Can't create edges file")
	}
	defer fileEdges.Close()
	writerEdges := csv.NewWriter(fileEdges)
	defer writerEdges.Flush()
	writerEdges.Comma = ';'
	// 		from_vertex_id - int64, ID of source OSM node
	// 		to_vertex_id - int64, ID of target OSM node
	// 		weight - float64, Euclidean length of an edge (pixels)
	//      surface - surfaces allowed on an edge
	//      geom - WKT LineString
	err = writerEdges.Write([]string{"from_vertex_id", "to_vertex_id", "weight", "surface", "geom"})
	if err != nil {
		return err
	}

	graph := ch.Graph{}
	var writeErr error
	m.Graph().ForEachEdge(func(from osmrouter.NodeID, edge osmrouter.Edge) {
		if writeErr != nil {
			return
		}
		source := int64(from)
		target := int64(edge.Target)
		if err := graph.CreateVertex(source); err != nil {
			writeErr = errors.Wrap(err, "Can not create source vertex")
			return
		}
		if err := graph.CreateVertex(target); err != nil {
			writeErr = errors.Wrap(err, "Can not create target vertex")
			return
		}
		if err := graph.AddEdge(source, target, edge.Weight); err != nil {
			writeErr = errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
			return
		}
		sourceNode, _ := m.Node(from)
		targetNode, _ := m.Node(edge.Target)
		writeErr = writerEdges.Write([]string{
			fmt.Sprintf("%d", source),
			fmt.Sprintf("%d", target),
			fmt.Sprintf("%f", edge.Weight),
			edge.Surface.String(),
			osmrouter.PrepareWKTLinestring([]osmrouter.GeoPoint{sourceNode.GeoPoint(), targetNode.GeoPoint()}),
		})
	})
	if writeErr != nil {
		return writeErr
	}

	if doContraction {
		fmt.Println("Starting contraction process....")
		st := time.Now()
		graph.PrepareContractionHierarchies()
		fmt.Printf("Done contraction process in %v\n", time.Since(st))
	}

	/* Vertices file */
	fileVertices, err := os.Create(fnameVertices)
	if err != nil {
		return errors.Wrap(err, "Can't create vertices file")
	}
	defer fileVertices.Close()
	writerVertices := csv.NewWriter(fileVertices)
	defer writerVertices.Flush()
	writerVertices.Comma = ';'
	// 		vertex_id - int64, ID of vertex
	// 		order_pos - int, Position of vertex in hierarchies (evaluted by library)
	// 		importance - int, Importance of vertex in graph (evaluted by library)
	//      geom - WKT Point
	err = writerVertices.Write([]string{"vertex_id", "order_pos", "importance", "geom"})
	if err != nil {
		return err
	}
	for i := range graph.Vertices {
		label := graph.Vertices[i].Label
		node, ok := m.Node(osmrouter.NodeID(label))
		if !ok {
			continue
		}
		err = writerVertices.Write([]string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%d", graph.Vertices[i].OrderPos()),
			fmt.Sprintf("%d", graph.Vertices[i].Importance()),
			osmrouter.PrepareWKTPoint(node.GeoPoint()),
		})
		if err != nil {
			return err
		}
	}

	if doContraction {
		/* Write shortcuts */
		// 	from_vertex_id - int64, ID of source vertex
		// 	to_vertex_id - int64, ID of arget vertex
		// 	weight - float64, Weight of an edge
		// 	via_vertex_id - int64, ID of vertex through which the shortcut exists
		err = graph.ExportShortcutsToFile(fnameShortcuts)
		if err != nil {
			return err
		}
	}
	return nil
}
