package assembly

// Finalizer consumes the completed document source, typically by writing it
// to disk and compiling it. It is invoked at most once per assembled
// document, after the body has closed.
type Finalizer interface {
	Finalize(source string) error
}

// FinalizerFunc adapts a function to the Finalizer interface.
type FinalizerFunc func(source string) error

func (f FinalizerFunc) Finalize(source string) error {
	return f(source)
}
