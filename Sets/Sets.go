package Sets

// Set holds distinct elements. Put, Has and Remove report false for elements
// the Set can't hold, such as nil pointers.
type Set[E any] interface {
	// Put e, returning false if an equal element is already in the Set.
	Put(E) bool
	Has(E) bool
	// Remove the element equal to e, returning false if there's none.
	Remove(E) bool
	Size() uint
	// Take returns some element without removing it; false if the Set is empty.
	Take() (E, bool)
	// Range calls f on each element until f returns false.
	Range(func(E) bool)
}
