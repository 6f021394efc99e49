// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline is Transformer -> Enricher -> PortfolioSink, driven by
// PortfolioService. Everything runs sequentially on the caller's goroutine.
package services
