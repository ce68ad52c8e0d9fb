package radar

// ============================================================================
// RENDERER OPTIONS — Functional options for New()
// ============================================================================

// Option configures a Renderer via functional options pattern.
type Option func(*config)

type config struct {
	Width       int
	Height      int
	Format      string  // "png" or "svg"
	OutputDir   string  // created on demand
	Suffix      string  // appended to the caller's prefix
	ScaleMax    float64 // top of the radial axis
	LabelRadius float64 // category label distance, in value units
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.Width = width
		c.Height = height
	}
}

// WithFormat selects "png" or "svg" output.
func WithFormat(format string) Option {
	return func(c *config) {
		c.Format = format
	}
}

// WithOutputDir sets the directory images are written to.
func WithOutputDir(dir string) Option {
	return func(c *config) {
		c.OutputDir = dir
	}
}

// WithSuffix sets the file name suffix placed between prefix and extension.
func WithSuffix(suffix string) Option {
	return func(c *config) {
		c.Suffix = suffix
	}
}

// WithScale sets the radial axis maximum. Ticks are drawn at every integer
// from 1 up to max.
func WithScale(max float64) Option {
	return func(c *config) {
		c.ScaleMax = max
	}
}

// WithLabelRadius sets where category labels sit, in value units.
// It should exceed the scale maximum.
func WithLabelRadius(r float64) Option {
	return func(c *config) {
		c.LabelRadius = r
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Width:       1200,
		Height:      1200,
		Format:      "png",
		OutputDir:   ".",
		Suffix:      "_radar_chart_unwrapped",
		ScaleMax:    5,
		LabelRadius: 5.3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
