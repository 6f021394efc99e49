// Package connectors holds RepositorySource implementations.
//
//   - github: the GitHub REST API, with quota checks before each call
//   - memory: an in-memory source for tests and offline runs from a JSON dump
package connectors
