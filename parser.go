package osmrouter

import (
	"fmt"

	"go.uber.org/zap"
)

// Parser holds map building parameters
type Parser struct {
	cellSize      float64
	maxIterations int
	logger        *zap.Logger
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Map parser parameters:
	cell_size: %f
	max_iterations: %d
	`,
		parser.cellSize,
		parser.maxIterations,
	)
}

// NewParser returns parser with default parameters overridden by options
func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{
		cellSize:      DEFAULT_CELL_SIZE,
		maxIterations: 0,
		logger:        zap.NewNop(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithCellSize sets size of spatial index cell (in projected units)
func WithCellSize(cellSize float64) func(*Parser) {
	return func(parser *Parser) {
		if cellSize > 0 {
			parser.cellSize = cellSize
		}
	}
}

// WithMaxIterations limits number of A* queue extractions per search. Zero means no limit.
func WithMaxIterations(maxIterations int) func(*Parser) {
	return func(parser *Parser) {
		parser.maxIterations = maxIterations
	}
}

// WithLogger sets logger for map building stages
func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}
