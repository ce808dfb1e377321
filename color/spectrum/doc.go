// Package spectrum loads tabulated spectral data and resamples it onto a
// caller-supplied wavelength axis.
//
// A [Spectrum] pairs a wavelength axis in metres with one or more response
// curves, one row per wavelength and one column per channel.
//
// # Loading
//
// [Load] resolves a table by name, parses it and interpolates it onto the
// requested axis:
//
//	lam := spectrum.Linspace(400e-9, 700e-9, 30)
//	cones, err := spectrum.Load(lam, "cones") // 30×3
//
// Names are tried as a path, as a path with ".dat" appended, in each
// directory of the search path, and finally in the embedded data set (see
// package data). The search path defaults to MVTB_DATA_PATH.
//
// Targets outside the tabulated range never fail: they are filled according
// to the extrapolation mode, zero by default.
//
// # Table format
//
// Plain text, one sample per line. Column 0 is wavelength in nanometres, the
// remaining columns are responses. Fields are separated by whitespace or
// commas; lines starting with '%' or '#' are comments.
package spectrum
