// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride forces loading from a specific config file.
// Set via the --config flag.
var configFilePathOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets a custom config file path, used by the
// --config flag. When set, only that file is consulted.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
