package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	// Push item to the tail.
	Push(item T)
	// Pop the item at the head. Returns *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	// Peek the item at the head without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
