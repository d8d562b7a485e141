package Trees

// Tree represents an ordered set of values held in a binary tree of nodes.
// Receivers that have a bool as a second return value use it to indicate
// whether the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false); x is then the zero value and shouldn't
// be used.
// Receivers taking a value return *InvalidInputError if the value is absent
// (nil pointer, nil interface, nil map/slice/func/chan). Failed calls never
// modify the tree.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here.
type Tree[T any] interface {
	//Add v to the Tree. Adding a value equal to one already in the Tree does nothing.
	Add(v T) error
	//Remove the element equal to v from the Tree and return the removed element,
	//which is the one stored in the Tree rather than v itself.
	//Returns *NotFoundError if there's no such element.
	Remove(v T) (T, error)
	//Get the element stored in the Tree that is equal to v.
	//Returns *NotFoundError if there's no such element.
	Get(v T) (T, error)
	//Contains reports whether an element equal to v is in the Tree.
	Contains(v T) (bool, error)
	//Size of the tree.
	Size() int
	//Clear removes all elements.
	Clear()
	//Height is the number of edges on the longest path from root to a leaf.
	//-1 for an empty tree.
	Height() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//PreOrder returns all elements, each node before its left then right subtree.
	PreOrder() []T
	//InOrder returns all elements in ascending order.
	InOrder() []T
	//PostOrder returns all elements, each node after its left then right subtree.
	PostOrder() []T
	//LevelOrder returns all elements by depth, left to right within a depth.
	LevelOrder() []T
	//Range calls f on elements in ascending order until f returns false.
	//The tree must not be modified by f.
	Range(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree or the recorded size is off.
	Corrupt() bool
}
