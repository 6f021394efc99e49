// Package domain defines the core entities for repofolio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRepository: A repository as returned by the hosting API
//   - PortfolioRepository: The canonical, enrichment-ready portfolio record
//   - Taxonomy: Static classification tables (languages, topics, palette)
//   - Quota: Remaining remote calls in the current rate-limit window
//
// Pure derivations (tech stack, tags, portfolio flags, ownership summary)
// live here as well because they depend on nothing but their inputs.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
