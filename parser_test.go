package osmrouter

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParser(t *testing.T) {
	parser := NewParser(
		WithCellSize(25),
		WithMaxIterations(1000),
		WithLogger(nil),
	)

	t.Log(parser)

	if parser.cellSize != 25 {
		t.Errorf("Cell size must be 25, got %f", parser.cellSize)
	}
	if parser.maxIterations != 1000 {
		t.Errorf("Max iterations must be 1000, got %d", parser.maxIterations)
	}
	if parser.logger == nil {
		t.Errorf("Nil logger must be ignored")
	}

	defaults := NewParser(WithCellSize(-1))
	if defaults.cellSize != DEFAULT_CELL_SIZE {
		t.Errorf("Non-positive cell size must be ignored, got %f", defaults.cellSize)
	}
}

func TestParserLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m, err := LoadMap(context.Background(), "./testdata/sample.osm", 1000, 800, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Ways()) == 0 {
		t.Fatalf("Ways expected")
	}
	stages := []string{
		"Document has been scanned",
		"Nodes have been projected",
		"Ways have been resolved",
		"Graph has been prepared",
		"Spatial index has been prepared",
	}
	for _, stage := range stages {
		if logs.FilterMessage(stage).Len() != 1 {
			t.Errorf("Stage '%s' must be logged once", stage)
		}
	}
	graphLogs := logs.FilterMessage("Graph has been prepared").All()
	if len(graphLogs) == 1 {
		if edges := graphLogs[0].ContextMap()["edges"]; edges != int64(10) {
			t.Errorf("Edges number must be logged, got %v", edges)
		}
	}
}
