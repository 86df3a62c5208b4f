package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most parts contiguous bands of
// nearly equal size. Earlier bands take the remainder rows.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > height {
		parts = height
	}

	bands := make([]Band, 0, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range parts {
		n := base
		if i < extra {
			n++
		}
		bands = append(bands, Band{Y0: y, Y1: y + n})
		y += n
	}
	return bands
}

// ForEachBand splits height rows into bands, one batch of work per worker
// times four, and runs fn for every band on the pool. It returns once all
// bands are done. Bands are disjoint, so fn may write its rows without
// locking.
func ForEachBand(p *WorkerPool, height int, fn func(b Band)) {
	bands := SplitRows(height, p.Workers()*4)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	p.ExecuteAll(work)
}
