package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-normal/tri3/internal/dsu"
)

func TestFindSingleton(t *testing.T) {
	d := dsu.New[int]()
	root, p := d.Find(5)
	assert.Equal(t, 5, root)
	assert.Equal(t, int8(0), p)
}

func TestUnionSamePlainParity(t *testing.T) {
	d := dsu.New[string]()
	require.False(t, d.Union("a", "b", 0))
	assert.True(t, d.Same("a", "b"))
	ra, pa := d.Find("a")
	rb, pb := d.Find("b")
	assert.Equal(t, ra, rb)
	assert.Equal(t, pa, pb)
}

func TestUnionFlippedParityPropagates(t *testing.T) {
	d := dsu.New[int]()
	require.False(t, d.Union(1, 2, 1)) // flipped
	require.False(t, d.Union(2, 3, 1)) // flipped again -> 1,3 same parity
	_, p1 := d.Find(1)
	_, p3 := d.Find(3)
	assert.Equal(t, p1, p3, "flip-of-a-flip should restore original parity")

	_, p2 := d.Find(2)
	assert.NotEqual(t, p1, p2)
}

func TestUnionConflictDetection(t *testing.T) {
	d := dsu.New[int]()
	require.False(t, d.Union(1, 2, 0))
	// Re-asserting with a conflicting parity must be reported.
	conflict := d.Union(1, 2, 1)
	assert.True(t, conflict)

	// Re-asserting the original relation is not a conflict.
	conflict = d.Union(1, 2, 0)
	assert.False(t, conflict)
}

func TestGroupsPartition(t *testing.T) {
	d := dsu.New[int]()
	d.Union(1, 2, 0)
	d.Union(2, 3, 0)
	d.MakeSet(4)
	groups := d.Groups()
	assert.Len(t, groups, 2)
	total := 0
	for _, members := range groups {
		total += len(members)
	}
	assert.Equal(t, 4, total)
}
