// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// options.go — functional options and the resolved builderConfig for the
// builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (per lvlath 99-rules). Constructors themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Use WithIDScheme to align vertex IDs across tests/golden fixtures.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - idFn: function mapping index→vertex ID (IDFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// creates its own config via newBuilderConfig.
type builderConfig struct {
	idFn IDFn // function to generate vertex IDs from indices
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. Later options override
// earlier ones. Default: DefaultIDFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn: DefaultIDFn,
	}

	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}
