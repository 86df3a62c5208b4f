// Package ring computes the pixels and geometry behind a gradient progress ring.
//
// # Overview
//
// The package has two independent halves:
//
//   - [Gradient] is a conic (angle swept) color ramp. It evaluates a
//     premultiplied color at any angle, samples a straight-alpha color at a
//     point, and rasterizes a full BGRA premultiplied buffer.
//   - [ArcGeometryBuilder] turns a progress percentage into a track outline,
//     a progress arc and a filled clip outline (the arc stroked with round
//     caps), memoizing the clip outline between calls.
//
// Smaller helpers cover the sibling controls: [DotColors] freezes the
// gradient onto the four dots of the indeterminate ring, and
// [BarGradientScale] keeps a linear bar's gradient fixed while its indicator
// grows.
//
// A presentation layer combines the two: it fills a layer with the
// gradient raster and clips it to the clip outline. Binding a buffer to a
// real surface goes through a [Presenter].
//
// # Quick Start
//
//	g := ring.DefaultGradient()
//	buf, err := g.Rasterize(512, 512, ring.WithWorkers(0))
//	if err != nil {
//	    return err
//	}
//
//	geom, err := ring.BuildArcGeometry(42, ring.Pt(256, 256), 200, 24)
//	if err != nil {
//	    return err
//	}
//	_ = geom.Clip // nil when the value is 0
//
// # Coordinate System
//
// Screen coordinates: origin at top-left, X right, Y down. All angles are in
// degrees and grow clockwise on screen. Arc geometry puts 0 degrees at the
// top of the circle. Gradient angles come from atan2(-dx, dy) and are then
// rotated by the gradient's angle offset.
//
// # Concurrency
//
// Gradient values are immutable and safe for concurrent use. An
// ArcGeometryBuilder owns a mutable cache and must be confined to one
// goroutine at a time.
package ring

// Version is the current version of the library.
const Version = "0.1.0"
