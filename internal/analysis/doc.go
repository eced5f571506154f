// Package analysis inspects the resampled orbital series in the frequency
// domain.
//
// The Milankovitch bands show up as spectral peaks near 405 and ~100 kyr
// (eccentricity), 41 kyr (obliquity) and 19-23 kyr (precession). [Peaks]
// lists the strongest local maxima of a series' power spectrum as periods in
// years.
package analysis
