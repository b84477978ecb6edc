package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrough_ComputeOnce(t *testing.T) {
	t.Parallel()

	c := New(16)
	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	v1, err := Through(c, "g", "k", compute)
	require.NoError(t, err)
	v2, err := Through(c, "g", "k", compute)
	require.NoError(t, err)

	assert.Equal(t, "value", v1)
	assert.Equal(t, "value", v2)
	assert.Equal(t, 1, calls, "second call with an equal key must hit the cache")
}

func TestThrough_InvalidateForcesRecompute(t *testing.T) {
	t.Parallel()

	c := New(16)
	calls := 0
	compute := func() (int, error) {
		calls++
		return calls, nil
	}

	_, err := Through(c, "g", "k", compute)
	require.NoError(t, err)

	c.Invalidate("g")

	v, err := Through(c, "g", "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, v)
}

func TestThrough_ErrorNotCached(t *testing.T) {
	t.Parallel()

	c := New(16)
	calls := 0
	boom := errors.New("boom")
	compute := func() (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	_, err := Through(c, "g", "k", compute)
	require.ErrorIs(t, err, boom)

	v, err := Through(c, "g", "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestThrough_GroupsAreIndependent(t *testing.T) {
	t.Parallel()

	c := New(16)
	calls := 0
	compute := func() (int, error) {
		calls++
		return calls, nil
	}

	_, err := Through(c, "a", "k", compute)
	require.NoError(t, err)
	_, err = Through(c, "b", "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	c.Invalidate("a")

	_, err = Through(c, "b", "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "invalidating group a must not touch group b")
}

func TestPutEvict(t *testing.T) {
	t.Parallel()

	c := New(16)
	c.Put("g", "k", 42)

	v, ok := c.Get("g", "k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	c.Evict("g", "k")
	_, ok = c.Get("g", "k")
	assert.False(t, ok)
}

func TestInvalidate_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	c := New(128)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _ = Through(c, "g", Key("k", j%10), func() (int, error) { return j, nil })
				if j%50 == 0 {
					c.Invalidate("g")
				}
			}
		}()
	}
	wg.Wait()
}

func TestKey_EquivalentArgumentsCollide(t *testing.T) {
	t.Parallel()

	name := "wave"
	id := uuid.New()
	idCopy := id

	k1 := Key(1, 20, &name, nil, &id)
	name2 := "wave"
	k2 := Key(1, 20, &name2, nil, &idCopy)

	assert.Equal(t, k1, k2, "keys must depend on values, not pointer identity")
}

func TestKey_DifferentArgumentsNeverCollide(t *testing.T) {
	t.Parallel()

	empty := ""
	assert.NotEqual(t, Key("a", nil), Key("a", &empty), "nil filter and empty-string filter are different queries")
	assert.NotEqual(t, Key(1, 20), Key(12, 0), "adjacent numeric fields must not merge")
	assert.NotEqual(t, Key("a|b"), Key("a", "b"), "separator inside a value must not forge a compound key")

	yes, status1 := true, 1
	assert.NotEqual(t, Key(&yes, nil), Key(nil, &status1))
}
