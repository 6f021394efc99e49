package driven

// ProgressReporter receives progress updates from long-running batch operations.
// It is optional; services accept nil.
type ProgressReporter interface {
	Start(total int)
	Increment()
	Finish()
}
