// Package csvgraph reads road networks stored as two comma-separated files:
//
//	nodes.csv: id,lon,lat
//	edges.csv: u,v
//
// The first row of each file is a header and is skipped. Extra trailing
// columns are ignored so exports with additional attributes load unchanged.
// Edge weights are not stored in the files; LoadFiles derives them from node
// coordinates through a core.WeightFunc at load time.
package csvgraph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

// Sentinel errors returned by the readers.
var (
	// ErrEmptyInput indicates a file without even a header row.
	ErrEmptyInput = errors.New("csvgraph: input is empty")

	// ErrMalformedRow indicates a row with missing or unparsable columns.
	ErrMalformedRow = errors.New("csvgraph: malformed row")
)

// ReadNodes parses id,lon,lat rows.
func ReadNodes(r io.Reader) ([]core.Node, error) {
	var nodes []core.Node
	err := readRows(r, 3, func(line int, rec []string) error {
		id, err := parseID(rec[0])
		if err != nil {
			return rowError(line, "id", err)
		}
		lon, err := parseFloat(rec[1])
		if err != nil {
			return rowError(line, "lon", err)
		}
		lat, err := parseFloat(rec[2])
		if err != nil {
			return rowError(line, "lat", err)
		}
		nodes = append(nodes, core.Node{ID: id, Lon: lon, Lat: lat})
		return nil
	})

	return nodes, err
}

// ReadEdges parses u,v rows. Weights are left at zero.
func ReadEdges(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge
	err := readRows(r, 2, func(line int, rec []string) error {
		u, err := parseID(rec[0])
		if err != nil {
			return rowError(line, "u", err)
		}
		v, err := parseID(rec[1])
		if err != nil {
			return rowError(line, "v", err)
		}
		edges = append(edges, core.Edge{From: u, To: v})
		return nil
	})

	return edges, err
}

// LoadFiles reads both files and builds a Graph. Without a WithWeightFunc
// option every edge weight is zero, so callers normally pass one.
func LoadFiles(nodesPath, edgesPath string, opts ...core.LoadOption) (*core.Graph, error) {
	nodes, err := readFile(nodesPath, ReadNodes)
	if err != nil {
		return nil, err
	}
	edges, err := readFile(edgesPath, ReadEdges)
	if err != nil {
		return nil, err
	}

	g, err := core.Load(nodes, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("build graph from %s and %s: %w", nodesPath, edgesPath, err)
	}

	return g, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rows, nil
}

// readRows skips the header and calls fn for every data row with at least
// minCols columns. Blank lines are skipped by encoding/csv.
func readRows(r io.Reader, minCols int, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyInput
		}
		return fmt.Errorf("header: %w", err)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < minCols {
			return fmt.Errorf("%w: line %d: want %d columns, got %d", ErrMalformedRow, line, minCols, len(rec))
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func rowError(line int, col string, err error) error {
	return fmt.Errorf("%w: line %d: column %s: %v", ErrMalformedRow, line, col, err)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
