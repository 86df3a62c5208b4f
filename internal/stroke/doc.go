// Package stroke converts polylines into filled outlines.
//
// A stroke is turned into a FILL region by walking two offset paths at
// +width/2 and -width/2 from the centerline:
//  1. The forward offset goes forward along the polyline
//  2. A round end cap connects forward to backward
//  3. The backward offset is appended in reverse
//  4. A round start cap closes the loop
//
// Joins between segments are round on the outer side of the turn. Joins
// whose angle change is below the flattening tolerance are skipped and the
// offset paths are simply continued, which keeps finely flattened circular
// arcs cheap.
//
// Every curve (caps and joins) is emitted as line segments whose distance
// from the true arc stays below the configured tolerance, so the result can
// be handed straight to a scanline rasterizer or a clip API that only
// accepts polygons.
//
// The algorithm follows the tiny-skia and kurbo stroke expanders.
package stroke
