package Queues

// circArrQ is a queue on a circular array. head is the index of the first item,
// tail the index right after the last one. The array grows by half when full.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (q *circArrQ[T]) Empty() bool {
	return q.sz == 0
}

// resize copies the items to a new array of length newLen>=sz, moving head to 0.
func (q *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.sz > 0 {
		if q.head < q.tail {
			copy(nc, q.content[q.head:q.tail])
		} else {
			n := copy(nc, q.content[q.head:])
			copy(nc[n:], q.content[:q.tail])
		}
	}
	q.content, q.head = nc, 0
	if q.tail = q.sz; q.tail == newLen {
		q.tail = 0
	}
}

// Shrink the underlying array to fit the items, keeping at least 1 slot.
func (q *circArrQ[T]) Shrink() {
	q.resize(q.sz | 1)
}

// Clear drops all items. O(len(content)) as references are zeroed for the GC.
func (q *circArrQ[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

func (q *circArrQ[T]) Size() uint {
	return q.sz
}

func (q *circArrQ[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz + q.sz>>1 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *circArrQ[T]) Pop() (item T, e error) {
	if q.Empty() {
		return item, &EmptyQueueError{}
	}
	item = q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return item, nil
}

func (q *circArrQ[T]) Peek() (item T) {
	if !q.Empty() {
		item = q.content[q.head]
	}
	return
}
