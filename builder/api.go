// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgsp/core"
)

var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrConstructFailed indicates a nil Constructor or a generated weight the
	// graph rejects.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownTopology indicates an unrecognized topology name.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)

// Constructor adds one topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph from gopts and applies cons in order with
// the configuration resolved from bopts. Equal inputs and seed give equal
// graphs, vertex order included.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the ring C_n, n ≥ 3.
func Cycle(n int) Constructor {
	return sized("Cycle", n, 3, func(cfg builderConfig) shape { return cycleShape(n, cfg.idFn) })
}

// Path builds the path P_n, n ≥ 2.
func Path(n int) Constructor {
	return sized("Path", n, 2, func(cfg builderConfig) shape { return pathShape(n, cfg.idFn) })
}

// Star builds a hub (StarCenterID) with n-1 leaves, n ≥ 2.
func Star(n int) Constructor {
	return sized("Star", n, 2, func(cfg builderConfig) shape { return starShape(n, cfg.idFn) })
}

// Complete builds K_n, n ≥ 1.
func Complete(n int) Constructor {
	return sized("Complete", n, 1, func(cfg builderConfig) shape { return completeShape(n, cfg.idFn) })
}

// Grid builds a rows×cols 4-neighborhood lattice. Vertex IDs are "r,c" in
// row-major order regardless of WithIDScheme, so sample r*cols+c of a
// signal lives on cell (r,c).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}

		return apply("Grid", g, cfg, gridShape(rows, cols))
	}
}

// sized validates n against least before resolving and applying the shape.
func sized(method string, n, least int, resolve func(builderConfig) shape) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < least {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
		}

		return apply(method, g, cfg, resolve(cfg))
	}
}

// apply inserts s.ids in order, then links every edge with the next weight.
func apply(method string, g *core.Graph, cfg builderConfig, s shape) error {
	for _, id := range s.ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, e := range s.edges {
		u, v := s.ids[e[0]], s.ids[e[1]]
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
		}
	}

	return nil
}
