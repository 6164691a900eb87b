// Package registry - Test registry generic thread-safe.
package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("words", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	v, exists := r.Get("words")
	assert.True(t, exists)
	assert.Equal(t, 1, v)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("words", "a")
	require.NoError(t, err)

	isNew, err := r.Register("words", "b")
	require.NoError(t, err)
	assert.False(t, isNew, "đăng ký trùng tên phải báo isNew = false")

	v, _ := r.Get("words")
	assert.Equal(t, "b", v, "item mới phải ghi đè item cũ")
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_MustGetPanics(t *testing.T) {
	r := NewRegistry[int]()
	assert.Panics(t, func() { r.MustGet("missing") })
}

func TestRegistry_ClearAllWithCleanup(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	var cleaned int
	count, err := r.ClearAll(func(int) error {
		cleaned++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, cleaned)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("item-%d", i), i)
			r.Get(fmt.Sprintf("item-%d", i))
			r.Names()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}
