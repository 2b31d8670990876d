package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

// Tints is the sequence the sandbox cycles through.
var Tints = []Color{White, Yellow, Cyan, Magenta, Gray}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Add offsets each channel by d and clamps. Alpha is untouched.
func (c Color) Add(d [3]float32) Color {
	for i := 0; i < 3; i++ {
		c[i] += d[i]
	}
	return c.Clamp()
}

// Clamp limits every channel to [0,1].
func (c Color) Clamp() Color {
	for i := range c {
		c[i] = min(max(c[i], 0), 1)
	}
	return c
}

// Lerp blends from c to o by t in [0,1].
func (c Color) Lerp(o Color, t float32) Color {
	t = min(max(t, 0), 1)
	var out Color
	for i := range c {
		out[i] = c[i] + (o[i]-c[i])*t
	}
	return out
}
