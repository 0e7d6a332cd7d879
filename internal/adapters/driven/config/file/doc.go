// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML configuration in ~/.menugen/config.toml, with
//     MENUGEN_* environment variables overriding file values for the
//     current process
package file
