// Package file provides the file-based implementation of the config
// driven port. The adapter persists configuration to the local
// filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
package file
