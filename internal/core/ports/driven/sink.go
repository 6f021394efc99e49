package driven

// PortfolioSink persists a finished portfolio document.
// Implementations must not mutate v and must wrap failures in domain.ErrWrite.
type PortfolioSink interface {
	Write(v any) error
}
