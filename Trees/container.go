package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*BST[int])(nil)
var _ Tree[int] = (*BST[int])(nil)

// Values returns the elements in ascending order, see [containers.Container].
func (u *BST[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// String lists the elements in ascending order.
func (u *BST[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BST\n")
	first := true
	u.Range(func(v T) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	return sb.String()
}
