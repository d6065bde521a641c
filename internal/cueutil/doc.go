// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE error-formatting helpers used by the
// configuration loader.
//
// CUE reports validation failures with flat error paths; FormatError converts
// them to JSON-path notation (e.g., "ui.color_scheme") so config errors point
// at the offending field.
package cueutil
