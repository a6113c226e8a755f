// Package config holds compiler-wide constants and the loadable
// CompilerConfig, in the same spirit as the teacher's internal/config
// (plain package-level constants) and internal/ext's YAML-backed config
// struct.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// IsTestMode mirrors the teacher's config.IsTestMode: set once at process
// start by test harnesses so output (e.g. fresh-unresolved type names) can be
// normalized for deterministic snapshots.
var IsTestMode = false

// MaxRecursionDepth bounds the parser's expression-parsing recursion,
// grounded on the teacher's parseExpression depth guard.
const MaxRecursionDepth = 256

// MaxFixedPointPasses bounds the resolver's constraint-solving loop (spec
// §4.5.2, §5, §8.7): a hard, constant cap guaranteeing termination on
// pathological or cyclic input.
const MaxFixedPointPasses = 10

// CompilerConfig is optional, file-loadable tuning for the pipeline. None of
// its fields change core semantics — only resource limits and test-mode
// switches, matching the spec's "cancellation and timeouts are not
// supported" stance (§5).
type CompilerConfig struct {
	MaxFixedPointPasses int  `yaml:"max_fixed_point_passes"`
	MaxRecursionDepth   int  `yaml:"max_recursion_depth"`
	TestMode            bool `yaml:"test_mode"`
}

// Default returns the built-in configuration.
func Default() CompilerConfig {
	return CompilerConfig{
		MaxFixedPointPasses: MaxFixedPointPasses,
		MaxRecursionDepth:   MaxRecursionDepth,
	}
}

// LoadConfig reads a YAML configuration file, following the teacher's
// internal/ext/config.go pattern of unmarshaling funxy.yaml with
// gopkg.in/yaml.v3. Missing fields fall back to Default().
func LoadConfig(path string) (CompilerConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxFixedPointPasses == 0 {
		cfg.MaxFixedPointPasses = MaxFixedPointPasses
	}
	if cfg.MaxRecursionDepth == 0 {
		cfg.MaxRecursionDepth = MaxRecursionDepth
	}
	return cfg, nil
}
