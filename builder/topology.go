// SPDX-License-Identifier: MIT
// File: topology.go
// Role: named topologies and their closed-form Laplacian spectra.
// Note:
//   - Spectra are for the combinatorial Laplacian with unit weights. A
//     constant weight w scales every eigenvalue by w.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvgsp/core"
)

// Topology names a one-parameter family of graphs.
type Topology string

const (
	TopologyRing     Topology = "ring"
	TopologyPath     Topology = "path"
	TopologyStar     Topology = "star"
	TopologyComplete Topology = "complete"
	TopologyGrid     Topology = "grid" // n×n
)

// Topologies lists every supported Topology.
var Topologies = []Topology{TopologyRing, TopologyPath, TopologyStar, TopologyComplete, TopologyGrid}

// ParseTopology resolves a topology name.
func ParseTopology(name string) (Topology, error) {
	for _, t := range Topologies {
		if string(t) == name {
			return t, nil
		}
	}

	return "", fmt.Errorf("ParseTopology(%q): %w", name, ErrUnknownTopology)
}

// Constructor returns the constructor of size n.
func (t Topology) Constructor(n int) Constructor {
	switch t {
	case TopologyRing:
		return Cycle(n)
	case TopologyPath:
		return Path(n)
	case TopologyStar:
		return Star(n)
	case TopologyComplete:
		return Complete(n)
	case TopologyGrid:
		return Grid(n, n)
	default:
		return func(*core.Graph, builderConfig) error {
			return fmt.Errorf("Topology(%q): %w", string(t), ErrUnknownTopology)
		}
	}
}

// Spectrum returns the ascending eigenvalues of the unit-weight
// combinatorial Laplacian of the size-n member:
//
//	ring      2 - 2cos(2πk/n)
//	path      2 - 2cos(πk/n)
//	star      0, 1 (n-2 times), n
//	complete  0, n (n-1 times)
//	grid      λ_i(P_n) + λ_j(P_n)
func (t Topology) Spectrum(n int) ([]float64, error) {
	least := map[Topology]int{
		TopologyRing: 3, TopologyPath: 2, TopologyStar: 2, TopologyComplete: 1, TopologyGrid: 1,
	}
	m, ok := least[t]
	if !ok {
		return nil, fmt.Errorf("Spectrum(%q): %w", string(t), ErrUnknownTopology)
	}
	if n < m {
		return nil, fmt.Errorf("Spectrum(%q): n=%d < min=%d: %w", string(t), n, m, ErrTooFewVertices)
	}

	var out []float64
	switch t {
	case TopologyRing:
		out = cosineSpectrum(n, 2*math.Pi/float64(n))
	case TopologyPath:
		out = cosineSpectrum(n, math.Pi/float64(n))
	case TopologyStar:
		out = make([]float64, n)
		for i := 1; i < n-1; i++ {
			out[i] = 1
		}
		out[n-1] = float64(n)
	case TopologyComplete:
		out = make([]float64, n)
		for i := 1; i < n; i++ {
			out[i] = float64(n)
		}
	case TopologyGrid:
		p := cosineSpectrum(n, math.Pi/float64(n))
		out = make([]float64, 0, n*n)
		for _, a := range p {
			for _, b := range p {
				out = append(out, a+b)
			}
		}
	}
	sort.Float64s(out)

	return out, nil
}

// cosineSpectrum returns 2 - 2cos(step·k) for k = 0..n-1.
func cosineSpectrum(n int, step float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = 2 - 2*math.Cos(step*float64(k))
	}

	return out
}
