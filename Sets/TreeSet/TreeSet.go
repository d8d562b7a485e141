package TreeSet

import (
	"github.com/g-m-twostay/go-bst/Sets"
	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Set kept in ascending order by a Trees.BST.
// Take gives the smallest element and Range goes in ascending order.
type TreeSet[E any] struct {
	t *Trees.BST[E]
}

var _ Sets.Set[int] = (*TreeSet[int])(nil)

func New[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E]()}
}

// NewC orders elements by cmp, see Trees.NewC.
func NewC[E any](cmp func(E, E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewC(cmp)}
}

func (s *TreeSet[E]) Put(e E) bool {
	sz := s.t.Size()
	return s.t.Add(e) == nil && s.t.Size() > sz
}

func (s *TreeSet[E]) Has(e E) bool {
	ok, _ := s.t.Contains(e)
	return ok
}

func (s *TreeSet[E]) Remove(e E) bool {
	_, err := s.t.Remove(e)
	return err == nil
}

func (s *TreeSet[E]) Size() uint {
	return uint(s.t.Size())
}

func (s *TreeSet[E]) Take() (E, bool) {
	return s.t.Minimum()
}

func (s *TreeSet[E]) Range(f func(E) bool) {
	s.t.Range(f)
}

// Tree exposes the underlying tree, e.g. for its traversals.
func (s *TreeSet[E]) Tree() *Trees.BST[E] {
	return s.t
}
