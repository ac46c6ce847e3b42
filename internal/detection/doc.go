// Package detection finds colored tokens in a photo and reports each one as
// an order.Observation.
//
// # Pipeline
//
// For every menu category, in menu.Categories order:
//
//  1. Masking: each pixel is converted to HSV (imaging.ToHSV) and kept when
//     it falls inside one of the category's color bands.
//  2. Components: kept pixels are grouped into 8-connected regions with an
//     iterative flood fill. Regions smaller than MinArea pixels are noise.
//  3. Outline: the convex hull of each region is computed from the leftmost
//     and rightmost pixel of every row.
//  4. Approximation: the hull is simplified with a closed Douglas-Peucker
//     pass whose tolerance is EpsilonRatio times the hull perimeter.
//  5. Classification: the remaining vertex count goes through menu.Classify.
//
// Observations are returned grouped by category in that fixed order, and in
// row-major discovery order within a category.
//
// # Color Bands
//
// A Band is a closed range on each of hue (degrees), saturation and value
// (both 0 to 1). A hue range whose low end exceeds its high end wraps
// through 0, so {350, 10} covers reds on both sides of the wheel.
//
// # Limitations
//
// The convex hull discards concavities, so a star-shaped token reads as its
// outer polygon. Tokens that touch each other in the same color merge into
// one region. Heavy shadows can push a token's saturation or value out of
// its band; widen the band in the config when that happens.
package detection
