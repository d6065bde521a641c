// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error machinery.
//
// ActionableError carries structured context (operation, resource,
// suggestions) for errors that surface to the user; build one with the
// ErrorContext fluent builder. The package also keeps a catalog of known
// failure classes with markdown help text rendered through glamour.
package issue
