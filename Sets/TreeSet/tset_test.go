package TreeSet

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeSet_PutHasRemove(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Put(3))
	assert.True(t, s.Put(1))
	assert.False(t, s.Put(3))
	assert.Equal(t, uint(2), s.Size())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.Equal(t, uint(1), s.Size())
}

func TestTreeSet_TakeRange(t *testing.T) {
	s := New[string]()
	_, ok := s.Take()
	assert.False(t, ok)
	for _, w := range []string{"pear", "apple", "fig"} {
		s.Put(w)
	}
	e, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, "apple", e)
	var all []string
	s.Range(func(w string) bool {
		all = append(all, w)
		return true
	})
	assert.Equal(t, []string{"apple", "fig", "pear"}, all)
	assert.Equal(t, all, s.Tree().InOrder())
}

func TestTreeSet_Absent(t *testing.T) {
	s := NewC(func(a, b *int) int { return cmp.Compare(*a, *b) })
	assert.False(t, s.Put(nil))
	assert.False(t, s.Has(nil))
	assert.False(t, s.Remove(nil))
	a := 1
	assert.True(t, s.Put(&a))
	assert.False(t, s.Has(new(int)))
	assert.Equal(t, uint(1), s.Size())
}

func TestTreeSet_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	s := New[int]()
	content := make(map[int]struct{})
	for _i := 0; _i < 20000; _i++ {
		v := rg.Intn(5000)
		_, in := content[v]
		if rg.Intn(2) == 0 {
			if s.Put(v) == in {
				t.Fatalf("put %d returned %v", v, in)
			}
			content[v] = struct{}{}
		} else {
			if s.Remove(v) != in {
				t.Fatalf("remove %d returned %v", v, !in)
			}
			delete(content, v)
		}
	}
	assert.Equal(t, uint(len(content)), s.Size())
	for k := range content {
		assert.True(t, s.Has(k))
	}
}
