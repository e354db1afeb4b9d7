// SPDX-License-Identifier: MIT
// Package filters: sentinel error set.
// Every exported routine returns these sentinels, optionally wrapped with
// call-site context via %w; match them with errors.Is.

package filters

import "errors"

var (
	// ErrInvalidKernelVariant is returned when a kernel is evaluated with a
	// variant tag other than ScalingFunction or Wavelet.
	ErrInvalidKernelVariant = errors.New("filters: invalid kernel variant")

	// ErrInvalidFilterCount indicates a requested filter count below 1.
	ErrInvalidFilterCount = errors.New("filters: filter count must be >= 1")

	// ErrInvalidLMax indicates a non-positive or non-finite largest eigenvalue.
	ErrInvalidLMax = errors.New("filters: lmax must be finite and > 0")

	// ErrTooFewScales indicates that the resolved scale sequence cannot feed
	// every kernel of the bank.
	ErrTooFewScales = errors.New("filters: too few scales for filter count")

	// ErrNilGraph indicates that a filter was built without a graph.
	ErrNilGraph = errors.New("filters: graph is nil")

	// ErrNoKernels indicates that a filter was built with an empty kernel list.
	ErrNoKernels = errors.New("filters: no kernels")

	// ErrSignalLength indicates a signal whose length differs from the graph order.
	ErrSignalLength = errors.New("filters: signal length does not match graph order")

	// ErrCoefficientCount indicates a coefficient set whose count differs from Len().
	ErrCoefficientCount = errors.New("filters: coefficient count does not match filter count")

	// ErrKernelLength indicates a kernel that returned a response of the wrong length.
	ErrKernelLength = errors.New("filters: kernel response length mismatch")

	// ErrBadSampleCount indicates a sampling grid with fewer than 2 points.
	ErrBadSampleCount = errors.New("filters: sample count must be >= 2")
)
