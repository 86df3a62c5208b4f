package ring

// Kind selects a family of ring layouts.
type Kind int

const (
	// Determinate1 is the standard ring; its size follows Size.
	Determinate1 Kind = iota
	// Determinate2 is the large-label ring; it has a single size.
	Determinate2
)

// Size is a named ring size.
type Size int

const (
	SizeXLarge Size = iota
	SizeLarge
	SizeMedium
	SizeSmall
	SizeSmallTitle
)

// String returns the size name.
func (s Size) String() string {
	switch s {
	case SizeXLarge:
		return "xlarge"
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	case SizeSmallTitle:
		return "smalltitle"
	default:
		return "unknown"
	}
}

// ParseSize maps a size name back to its Size.
func ParseSize(name string) (Size, bool) {
	for s := SizeXLarge; s <= SizeSmallTitle; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Orientation is where the label sits relative to the ring.
type Orientation int

const (
	// Vertical puts the label below the ring.
	Vertical Orientation = iota
	// Horizontal puts the label beside the ring.
	Horizontal
)

// Preset is the geometry of one named ring layout.
type Preset struct {
	Kind        Kind
	Size        Size
	Orientation Orientation
	Radius      float64
	Thickness   float64
	Margin      float64 // uniform margin around the ring's bounding square
}

// Spec returns an ArcSpec for value centered in the preset's square.
func (p Preset) Spec(value float64) ArcSpec {
	return ArcSpec{
		Center:    CenterFor(p.Radius, p.Thickness),
		Radius:    p.Radius,
		Thickness: p.Thickness,
		Value:     value,
	}
}

var presets = []Preset{
	{Kind: Determinate1, Size: SizeXLarge, Orientation: Vertical, Radius: 30, Thickness: 10, Margin: 7},
	{Kind: Determinate1, Size: SizeLarge, Orientation: Vertical, Radius: 21, Thickness: 8, Margin: 5},
	{Kind: Determinate1, Size: SizeMedium, Orientation: Vertical, Radius: 17, Thickness: 6, Margin: 4},
	{Kind: Determinate1, Size: SizeSmall, Orientation: Horizontal, Radius: 8.5, Thickness: 3, Margin: 2},
	{Kind: Determinate1, Size: SizeSmallTitle, Orientation: Horizontal, Radius: 7, Thickness: 2, Margin: 1.6},
	{Kind: Determinate2, Size: SizeSmallTitle, Orientation: Vertical, Radius: 31, Thickness: 6, Margin: 7},
}

// LookupPreset returns the layout for kind and size. Determinate2 has one
// layout and ignores size.
func LookupPreset(kind Kind, size Size) (Preset, bool) {
	for _, p := range presets {
		if p.Kind != kind {
			continue
		}
		if kind == Determinate2 || p.Size == size {
			return p, true
		}
	}
	return Preset{}, false
}
