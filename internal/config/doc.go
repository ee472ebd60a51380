// Package config provides configuration management for seolint.
//
// Configuration comes from two sources:
//   - CLI flags, collected into the Config struct by the cmd package
//   - An optional .seolint YAML rules file that overrides the default
//     validation rules (required tag sets, thresholds, site origin)
//
// Design decision: Rule thresholds are product decisions inherited from the
// original validation checklist. They are kept as documented constants with
// file-based overrides rather than hardcoded literals, but the defaults are
// never changed silently.
package config
