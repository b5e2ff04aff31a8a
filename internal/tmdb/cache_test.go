package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_NameNormalization(t *testing.T) {
	c := newCache(time.Hour)
	c.set("Zo\u00eb Kravitz", []Person{{ID: 37625}})

	for _, name := range []string{"Zo\u00eb Kravitz", "ZO\u00cb KRAVITZ", "  zo\u00eb kravitz ", "Zoe\u0308 Kravitz"} {
		got, ok := c.get(name)
		require.True(t, ok, name)
		assert.Equal(t, int64(37625), got[0].ID)
	}

	_, ok := c.get("Zoe Kravitz")
	assert.False(t, ok, "accents are significant")
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache(time.Minute)
	c.now = func() time.Time { return now }

	c.set("Hugo Weaving", []Person{{ID: 1331}})
	_, ok := c.get("Hugo Weaving")
	require.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.get("Hugo Weaving")
	assert.False(t, ok, "expired at ttl")

	c.set("Hugo Weaving", []Person{{ID: 1331}})
	_, ok = c.get("Hugo Weaving")
	assert.True(t, ok, "refreshed by set")
}

func TestCache_ExpiredEntriesRemoved(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache(time.Minute)
	c.now = func() time.Time { return now }

	c.set("Carrie-Anne Moss", []Person{{ID: 530}})
	c.set("Laurence Fishburne", []Person{{ID: 2975}})
	require.Len(t, c.entries, 2)

	now = now.Add(time.Minute)
	_, ok := c.get("Carrie-Anne Moss")
	assert.False(t, ok)
	assert.Len(t, c.entries, 1, "expired entry dropped on read")

	// Never read again, but swept by the next set.
	c.set("Joe Pantoliano", []Person{{ID: 532}})
	assert.Len(t, c.entries, 1)
	_, ok = c.get("Joe Pantoliano")
	assert.True(t, ok)
}

func TestCache_SweepsAtMostOncePerTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache(time.Minute)
	c.now = func() time.Time { return now }

	c.set("A", nil)
	now = now.Add(30 * time.Second)
	c.set("B", nil)
	now = now.Add(35 * time.Second) // A expired at 60s, B expires at 90s
	c.set("C", nil)
	assert.Len(t, c.entries, 2, "A swept; B and C kept")

	now = now.Add(30 * time.Second) // B expired, last sweep 30s ago
	c.set("D", nil)
	assert.Len(t, c.entries, 3, "no sweep before a ttl has passed")
}

func TestCache_EmptyResultsAreCached(t *testing.T) {
	c := newCache(time.Hour)
	c.set("Nobody Known", nil)

	got, ok := c.get("Nobody Known")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCache_Disabled(t *testing.T) {
	c := newCache(0)
	c.set("Keanu Reeves", []Person{{ID: 6384}})

	_, ok := c.get("Keanu Reeves")
	assert.False(t, ok)
}
