package interfaces

// InputSource yields the raw input blob. It is read exactly once per run.
type InputSource interface {
	ReadInput() ([]byte, error)
}
