package ampl

// Colormap is a linear-segmented colormap: evenly spaced color stops with
// linear interpolation between them. Used for 2D histogram fills.
type Colormap struct {
	Name  string
	Stops []RGBA
}

// At returns the color at position t in [0, 1]. Values outside the range
// are clamped to the ends.
func (m Colormap) At(t float64) RGBA {
	n := len(m.Stops)
	if n == 0 {
		return Black
	}
	if n == 1 || t <= 0 {
		return m.Stops[0]
	}
	if t >= 1 {
		return m.Stops[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return m.Stops[n-1]
	}
	f := pos - float64(i)
	a, b := m.Stops[i], m.Stops[i+1]
	return RGBA{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
		A: a.A + (b.A-a.A)*f,
	}
}

// Bird is the house colormap for 2D histograms: a blue-to-yellow ramp that
// stays perceptually ordered in grayscale.
var Bird = Colormap{
	Name: "bird",
	Stops: []RGBA{
		RGB(0.0592, 0.3599, 0.8684),
		RGB(0.078, 0.5041, 0.8385),
		RGB(0.0232, 0.6419, 0.7914),
		RGB(0.1802, 0.7178, 0.6425),
		RGB(0.5301, 0.7492, 0.4662),
		RGB(0.8186, 0.7328, 0.3499),
		RGB(0.9956, 0.7862, 0.1968),
		RGB(0.9764, 0.9832, 0.0539),
	},
}
