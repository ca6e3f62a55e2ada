package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percussion/percussioncms-sub004/pkg/cache"
)

type patternKey struct {
	pattern string
	locale  string
}

func TestLRUCache_Basic(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRUCache[patternKey, string](3)
		c.Put(patternKey{"dd/MM/yyyy", "en"}, "a")
		c.Put(patternKey{"dd.MM.yyyy", "de"}, "b")

		v, ok := c.Get(patternKey{"dd.MM.yyyy", "de"})
		assert.True(t, ok)
		assert.Equal(t, "b", v)

		_, ok = c.Get(patternKey{"dd.MM.yyyy", "en"})
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("update existing returns old value", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		v, ok := c.Remove("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		_, ok = c.Remove("a")
		assert.False(t, ok)
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)
	var evicted []string
	c.SetEvictCallback(func(key string, _ int) { evicted = append(evicted, key) })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b is now least recently used
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, evicted)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c"}, evicted)
}

func TestLRUCache_GetOrLoad(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, string](4)
	calls := 0
	load := func() (string, error) {
		calls++
		return "compiled", nil
	}

	v, hit, err := c.GetOrLoad("HH:mm", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "compiled", v)

	v, hit, err = c.GetOrLoad("HH:mm", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "compiled", v)
	assert.Equal(t, 1, calls)

	t.Run("errors are not cached", func(t *testing.T) {
		boom := errors.New("bad pattern")
		_, _, err := c.GetOrLoad("''x", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
		_, ok := c.Get("''x")
		assert.False(t, ok)
	})

	stats := c.Stats()
	assert.Equal(t, 1, stats.Len)
	assert.GreaterOrEqual(t, stats.Hits, uint64(1))
	assert.GreaterOrEqual(t, stats.Misses, uint64(2))
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[int, string](16)
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := i % 32
			v, _, err := c.GetOrLoad(k, func() (string, error) { return fmt.Sprint(k), nil })
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprint(k), v)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
