// Package loader reads min-cost-flow and max-flow instances from JSON or
// YAML documents and watches them for changes.
//
// Min-cost flow:
//
//	{"demands": [-5, 0, 5],
//	 "edges": [[0, 1], [1, 2], [0, 2]],
//	 "costs": [1, 1, 3],
//	 "lower_capacities": [0, 0, 0],
//	 "upper_capacities": [5, 5, 10]}
//
// Max flow replaces demands and costs with "source" and "sink".
// lower_capacities is optional in both.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/potflow/network"
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

var (
	// ErrUnknownFormat is returned for a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrBadEdge is returned when an edge is not a [tail, head] pair.
	ErrBadEdge = errors.New("loader: edge must be a [tail, head] pair")

	// ErrSourceSink is returned when only one of source and sink is given.
	ErrSourceSink = errors.New("loader: source and sink must be given together")
)

// Document is the wire form shared by both problem kinds.
type Document struct {
	Demands         []int64 `json:"demands,omitempty" yaml:"demands,omitempty"`
	Edges           [][]int `json:"edges" yaml:"edges"`
	Costs           []int64 `json:"costs,omitempty" yaml:"costs,omitempty"`
	LowerCapacities []int64 `json:"lower_capacities,omitempty" yaml:"lower_capacities,omitempty"`
	UpperCapacities []int64 `json:"upper_capacities" yaml:"upper_capacities"`
	Source          *int    `json:"source,omitempty" yaml:"source,omitempty"`
	Sink            *int    `json:"sink,omitempty" yaml:"sink,omitempty"`
}

// Problem is a decoded document. Exactly one of MinCost and MaxFlow is set.
type Problem struct {
	Path    string
	MinCost *network.Instance
	MaxFlow *network.MaxFlowInstance
}

// Kind returns "maxflow" or "mincost".
func (p *Problem) Kind() string {
	if p.MaxFlow != nil {
		return "maxflow"
	}

	return "mincost"
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Problem, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	p, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path

	return p, nil
}

// Decode parses data and builds the instance it describes. Unknown fields
// are rejected.
func Decode(data []byte, format Format) (*Problem, error) {
	var doc Document
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("loader: decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("loader: decode yaml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	return doc.Problem()
}

// Problem validates the document and builds its instance.
func (d *Document) Problem() (*Problem, error) {
	edges := make([]network.Edge, len(d.Edges))
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edges[%d] has %d entries", ErrBadEdge, i, len(e))
		}
		edges[i] = network.Edge{Tail: e[0], Head: e[1]}
	}

	if (d.Source == nil) != (d.Sink == nil) {
		return nil, ErrSourceSink
	}
	if d.Source != nil {
		mf := &network.MaxFlowInstance{
			Edges:  edges,
			Lower:  d.LowerCapacities,
			Upper:  d.UpperCapacities,
			Source: *d.Source,
			Sink:   *d.Sink,
		}
		// Build once so endpoint and bound errors surface at load time.
		if _, err := mf.ToMinCostFlow(); err != nil {
			return nil, fmt.Errorf("loader: max-flow instance: %w", err)
		}

		return &Problem{MaxFlow: mf}, nil
	}

	in, err := network.NewInstance(d.Demands, edges, d.Costs, d.LowerCapacities, d.UpperCapacities)
	if err != nil {
		return nil, fmt.Errorf("loader: min-cost instance: %w", err)
	}

	return &Problem{MinCost: in}, nil
}
