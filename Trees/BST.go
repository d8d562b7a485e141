package Trees

import (
	"cmp"
	"reflect"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values.
// For every node, the values in its left subtree are smaller and the values
// in its right subtree are larger under Cmp. Nothing is rebalanced, so the
// height D is O(log n) on average for random insertions but O(n) for sorted
// insertions. All receivers are iterative, so a degenerate tree never
// deepens the call stack.
// A BST isn't safe for concurrent use; callers must serialize access.
type BST[T any] struct {
	root *node[T]
	sz   int
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(T, T) int
	//reports whether a value is absent. nil when T can't hold absent values.
	isNil func(T) bool
}

// New returns an empty BST ordered by cmp.Compare.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{cmp: cmp.Compare[T]}
}

// NewC returns an empty BST ordered by c, which must be a total order.
// Values are compared only through c, so two values with equal keys but
// different payloads are treated as the same element.
func NewC[T any](c func(T, T) int) *BST[T] {
	return &BST[T]{cmp: c, isNil: absent[T]}
}

// From builds a BST holding the values of sli, which must be sorted in
// strictly ascending order. The built tree has minimal height. This is
// faster than repeatedly calling Add on sorted input, which yields a chain.
// Returns InvalidSliceError if sli isn't strictly ascending.
// Time: O(n).
func From[T constraints.Ordered](sli []T) (*BST[T], error) {
	return New[T]().build("From", sli)
}

// FromC is the NewC equivalence of From.
func FromC[T any](sli []T, c func(T, T) int) (*BST[T], error) {
	return NewC(c).build("FromC", sli)
}

func (u *BST[T]) build(op string, sli []T) (*BST[T], error) {
	for i := range sli {
		if u.invalid(sli[i]) {
			return nil, &InvalidInputError{op}
		}
		if i > 0 && u.cmp(sli[i-1], sli[i]) >= 0 {
			return nil, InvalidSliceError{i, sli[i-1], sli[i]}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	u.root, u.sz = build(sli), len(sli)
	if logging() {
		logOp(op, nil, u.sz, nil)
	}
	return u, nil
}

// absent reports whether v is a nil interface, pointer, map, slice, func or chan.
func absent[T any](v T) bool {
	switch rv := reflect.ValueOf(any(v)); rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (u *BST[T]) invalid(v T) bool {
	return u.isNil != nil && u.isNil(v)
}

// find the slot holding the node equal to v. The slot holds nil if there's
// no such node, in which case it is where v would be attached.
// Time: O(D); Space: O(1)
func (u *BST[T]) find(v T) **node[T] {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if order := u.cmp(v, cur.v); order < 0 {
			curPtr = &cur.l
		} else if order > 0 {
			curPtr = &cur.r
		} else {
			break
		}
	}
	return curPtr
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *BST[T]) Add(v T) error {
	if u.invalid(v) {
		err := &InvalidInputError{"Add"}
		if logging() {
			logOp("Add", v, u.sz, err)
		}
		return err
	}
	if curPtr := u.find(v); *curPtr == nil {
		*curPtr = &node[T]{v: v}
		u.sz++
		if logging() {
			logOp("Add", v, u.sz, nil)
		}
	}
	return nil
}

// Remove [Tree.Remove]
// A node with two children takes the value of its predecessor, the rightmost
// node of its left subtree, which is then unlinked in place of it. The
// predecessor has no right child, so unlinking it never needs a third case.
// Time: O(D); Space: O(1)
func (u *BST[T]) Remove(v T) (removed T, err error) {
	if u.invalid(v) {
		err = &InvalidInputError{"Remove"}
	} else if curPtr := u.find(v); *curPtr == nil {
		err = &NotFoundError{"Remove", v}
	} else {
		cur := *curPtr
		removed = cur.v
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			p := &cur.l
			for (*p).r != nil {
				p = &(*p).r
			}
			cur.v = (*p).v
			*p = (*p).l
		}
		u.sz--
	}
	if logging() {
		logOp("Remove", v, u.sz, err)
	}
	return
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *BST[T]) Get(v T) (T, error) {
	if u.invalid(v) {
		return *new(T), &InvalidInputError{"Get"}
	}
	if cur := *u.find(v); cur != nil {
		return cur.v, nil
	}
	return *new(T), &NotFoundError{"Get", v}
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *BST[T]) Contains(v T) (bool, error) {
	if u.invalid(v) {
		return false, &InvalidInputError{"Contains"}
	}
	return *u.find(v) != nil, nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no elements.
func (u *BST[T]) Empty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]. The nodes are left to the GC.
// Time: O(1); Space: O(1)
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
	if logging() {
		logOp("Clear", nil, 0, nil)
	}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}
