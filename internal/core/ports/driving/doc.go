// Package driving defines the interfaces that external actors use to call INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI depends on these interfaces; services in internal/core/services
// implement them.
package driving
