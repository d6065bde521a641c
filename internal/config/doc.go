// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the skillpack configuration.
//
// Configuration lives in a CUE file (config.cue) under the platform config
// directory. Files are validated against an embedded CUE schema before being
// merged into Viper on top of the defaults, so a malformed config fails with
// a field-level error instead of silently misbehaving.
package config
