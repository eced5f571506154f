// Package insolation evaluates daily-average top-of-atmosphere solar
// radiation over a latitude x season grid from the three orbital elements.
//
// For latitude φ and solar longitude λ the model uses
//
//	δ  = ε sin λ
//	h₀ = acos(-tan φ tan δ), clamped to 0 (polar night) or π (polar day)
//	Q  = (S₀/π) (1 + e cos(λ - ϖ))² (h₀ sin φ sin δ + cos φ cos δ sin h₀)
//
// where ε is obliquity, e eccentricity and ϖ the precession angle.
//
// A [Grid] is recomputed in place for each frame; [Series] evaluates a single
// point across a whole dataset concurrently.
package insolation
