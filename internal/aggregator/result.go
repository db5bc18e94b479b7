package aggregator

// Result is either a success carrying data or a failure carrying a message.
type Result[T any] struct {
	data    T
	message string
	ok      bool
}

func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// Get returns the data and true on success, the zero value and false otherwise.
func (r Result[T]) Get() (T, bool) { return r.data, r.ok }

func (r Result[T]) IsSuccess() bool { return r.ok }

// Message is the failure text; empty on success.
func (r Result[T]) Message() string { return r.message }
