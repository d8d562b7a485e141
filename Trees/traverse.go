package Trees

import (
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
)

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder() []T {
	res := make([]T, 0, u.sz)
	if u.root == nil {
		return res
	}
	st := arraystack.New()
	for st.Push(u.root); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*node[T])
		res = append(res, cur.v)
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return res
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrder() []T {
	res := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

// PostOrder [Tree.PostOrder]. Collects node, right, left with a stack and
// reverses the result.
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrder() []T {
	res := make([]T, 0, u.sz)
	if u.root == nil {
		return res
	}
	st := arraystack.New()
	for st.Push(u.root); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*node[T])
		res = append(res, cur.v)
		if cur.l != nil {
			st.Push(cur.l)
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
	}
	slices.Reverse(res)
	return res
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width)
func (u *BST[T]) LevelOrder() []T {
	res := make([]T, 0, u.sz)
	if u.root == nil {
		return res
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		res = append(res, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return res
}

// Range [Tree.Range]
// Time: O(n); Space: O(D)
func (u *BST[T]) Range(f func(T) bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*node[T])
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

// Height [Tree.Height]. Every node is visited once; the height isn't cached
// since removals would have to update every ancestor.
// Time: O(n); Space: O(D)
func (u *BST[T]) Height() int {
	h := -1
	if u.root == nil {
		return h
	}
	st := arraystack.New()
	for st.Push(frame[T]{u.root, 0}); !st.Empty(); {
		top, _ := st.Pop()
		f := top.(frame[T])
		h = max(h, f.d)
		if f.n.l != nil {
			st.Push(frame[T]{f.n.l, f.d + 1})
		}
		if f.n.r != nil {
			st.Push(frame[T]{f.n.r, f.d + 1})
		}
	}
	return h
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BST[T]) Corrupt() bool {
	n, ordered := 0, true
	var prev T
	u.Range(func(v T) bool {
		if n > 0 && u.cmp(prev, v) >= 0 {
			ordered = false
			return false
		}
		prev = v
		n++
		return true
	})
	return !ordered || n != u.sz
}
