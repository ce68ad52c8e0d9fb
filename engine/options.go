package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	RoleMapping map[string]string // raw responder label → canonical role
	MinCount    int               // aggregates backed by fewer responses are dropped
}

// WithRoleMapping replaces the default responder → role lookup table.
func WithRoleMapping(mapping map[string]string) Option {
	return func(c *config) {
		c.RoleMapping = mapping
	}
}

// WithMinResponses drops (category, role) means backed by fewer than n
// responses before pivoting. n <= 1 keeps every mean.
func WithMinResponses(n int) Option {
	return func(c *config) {
		c.MinCount = n
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		RoleMapping: DefaultRoleMapping(),
		MinCount:    1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
