package stream

// New creates a buffered stream carrying values of type T between a
// producing and a consuming goroutine.
func New[T any](size int) Stream[T] {
	return &stream[T]{
		ch: make(chan T, size),
	}
}

type Reader[T any] interface {
	// Pop blocks for the next value; ok is false once the writer side
	// is closed and drained.
	Pop() (val T, ok bool)
	// Slice drains the stream to completion.
	Slice() []T
}

type Writer[T any] interface {
	Push(T)
	Close()
}

type Stream[T any] interface {
	Reader[T]
	Writer[T]
}

type stream[T any] struct {
	ch chan T
}

func (s *stream[T]) Pop() (T, bool) {
	val, ok := <-s.ch
	return val, ok
}

func (s *stream[T]) Slice() []T {
	sl := []T{}
	for itm := range s.ch {
		sl = append(sl, itm)
	}
	return sl
}

func (s *stream[T]) Push(val T) {
	s.ch <- val
}

func (s *stream[T]) Close() {
	close(s.ch)
}
