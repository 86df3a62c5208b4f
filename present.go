package ring

import "fmt"

// Presenter receives finished raster buffers, for example to upload them to
// a texture or a drawing surface. The buffer belongs to the presenter once
// Present is called; ring never touches it again.
type Presenter interface {
	Present(buf *RasterBuffer) error
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func(buf *RasterBuffer) error

// Present calls f(buf).
func (f PresenterFunc) Present(buf *RasterBuffer) error {
	return f(buf)
}

// Render rasterizes g at width x height and hands the buffer to p.
func Render(g *Gradient, width, height int, p Presenter, opts ...RasterOption) error {
	buf, err := g.Rasterize(width, height, opts...)
	if err != nil {
		return err
	}
	if err := p.Present(buf); err != nil {
		return fmt.Errorf("ring: present %dx%d: %w", width, height, err)
	}
	return nil
}
