// Package file provides the TOML configuration file for repofolio.
//
// The file lives at ~/.repofolio/config.toml unless another directory is
// given. Values resolve with the precedence flag > environment > file >
// default; flags are applied by the CLI, the rest here.
package file
