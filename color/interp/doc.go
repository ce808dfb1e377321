// Package interp provides 1-D interpolation of tabulated data.
//
// [Table] resamples one or more curves sampled on an ascending, possibly
// non-uniform axis. Two methods are available:
//
//   - [Linear]:  piecewise linear between neighbouring samples
//   - [Hermite]: cubic Hermite with finite-difference tangents
//
// Queries outside the tabulated domain follow the table's [Extrapolation]:
// [Zero] fills with 0, [Clamp] holds the end values and [Extend] continues
// the first or last segment linearly.
//
// The uniform-grid primitives [Linear2] and [Hermite4] are exported for
// callers that already hold neighbouring samples.
package interp
