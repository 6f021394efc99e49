// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RepositorySource: Rate-limit aware access to the hosting API
//   - PortfolioSink: Destination of the finished JSON document
//
// # Optional Interfaces
//
//   - ProgressReporter: Receives enrichment progress. May be nil.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
