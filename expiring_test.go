package lru

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiring_lazyExpiry(t *testing.T) {
	c := NewExpiring[uint64, uint64](30*time.Second, Config[uint64]{Capacity: 1, Digest: identity})

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Insert(1, 1)

	v, found := c.Get(1)
	require.True(t, found)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, 1, c.Len())

	// Aging the entry 35 seconds past insertion.
	c.now = func() time.Time { return now.Add(35 * time.Second) }

	_, found = c.Get(1)
	assert.False(t, found)

	// The stale entry was removed, not just hidden.
	assert.Equal(t, 0, c.Len())
}

func TestExpiring_idleStaysAtCapacity(t *testing.T) {
	c := NewExpiring[uint64, int](30*time.Second, Config[uint64]{Capacity: 5, Digest: identity})

	now := time.Now()
	c.now = func() time.Time { return now }

	for i := uint64(0); i < 5; i++ {
		c.Insert(i, int(i))
	}

	// Entries never self-evict on a timer, an idle cache stays full even
	// when everything in it is stale.
	c.now = func() time.Time { return now.Add(time.Hour) }
	assert.Equal(t, 5, c.Len())
}

func TestExpiring_setTimeout(t *testing.T) {
	c := NewExpiring[uint64, int](30*time.Second, Config[uint64]{Capacity: 3, Digest: identity})

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Insert(1, 1)

	c.now = func() time.Time { return now.Add(35 * time.Second) }

	// Raising the timeout revives the entry for future accesses.
	c.SetTimeout(time.Minute)
	assert.Equal(t, time.Minute, c.Timeout())

	v, found := c.Get(1)
	require.True(t, found)
	assert.Equal(t, 1, v)

	// Lowering it expires the entry on the next access.
	c.SetTimeout(10 * time.Second)

	_, found = c.Get(1)
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestExpiring_insertedAt(t *testing.T) {
	c := NewExpiring[uint64, int](30*time.Second, Config[uint64]{Capacity: 3, Digest: identity})

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Insert(1, 1)

	got, found := c.InsertedAt(1)
	require.True(t, found)
	assert.True(t, got.Equal(now))

	// Insertion time is reported even for entries older than the timeout.
	c.now = func() time.Time { return now.Add(time.Hour) }

	got, found = c.InsertedAt(1)
	require.True(t, found)
	assert.True(t, got.Equal(now))

	_, found = c.InsertedAt(2)
	assert.False(t, found)
}

func TestExpiring_update(t *testing.T) {
	c := NewExpiring[uint64, string](30*time.Second, Config[uint64]{Capacity: 3, Digest: identity})

	now := time.Now()
	c.now = func() time.Time { return now }

	_, replaced := c.Insert(1, "a")
	assert.False(t, replaced)

	// Replacing refreshes the timestamp.
	c.now = func() time.Time { return now.Add(25 * time.Second) }

	prev, replaced := c.Insert(1, "b")
	assert.True(t, replaced)
	assert.Equal(t, "a", prev)

	c.now = func() time.Time { return now.Add(50 * time.Second) }

	v, found := c.Get(1)
	require.True(t, found)
	assert.Equal(t, "b", v)
}

func TestExpiring_removeAndClear(t *testing.T) {
	c := NewExpiring[uint64, int](time.Minute, Config[uint64]{Capacity: 3, Digest: identity})

	c.Insert(1, 1)
	c.Insert(2, 2)

	v, found := c.Remove(1)
	require.True(t, found)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())

	_, found = c.Remove(1)
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
