package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senarclens/cvrptwms/core"
)

func demandOf(ids map[int]float64) func(int) float64 {
	return func(id int) float64 { return ids[id] }
}

func TestNewRoute_StartsEmpty(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	require.True(t, r.IsEmpty())
	require.Equal(t, 0, r.Len())
	require.Equal(t, 0.0, r.Load)
	require.NotNil(t, r.Head())
	require.NotNil(t, r.Tail())
	require.Same(t, r.Head().Next, r.Tail())
}

func TestInsertAfter_GrowsRouteAndLoad(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	n1 := &core.RouteNode{ID: 1}
	require.NoError(t, r.InsertAfter(r.Head(), n1, 5))
	require.False(t, r.IsEmpty())
	require.Equal(t, 1, r.Len())
	require.Equal(t, 5.0, r.Load)
	require.Same(t, r.First(), n1)
	require.Same(t, r.Last(), n1)

	n2 := &core.RouteNode{ID: 2}
	require.NoError(t, r.InsertAfter(n1, n2, 3))
	require.Equal(t, 2, r.Len())
	require.Equal(t, 8.0, r.Load)
	require.Same(t, r.First(), n1)
	require.Same(t, r.Last(), n2)
}

func TestInsertAfter_NilPredecessor(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	err := r.InsertAfter(nil, &core.RouteNode{ID: 1}, 1)
	require.ErrorIs(t, err, core.ErrNilPredecessor)
}

func TestSpliceOut_SingleNode_RestoresEmptyRoute(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	n1 := &core.RouteNode{ID: 1}
	require.NoError(t, r.InsertAfter(r.Head(), n1, 7))

	demands := map[int]float64{1: 7}
	first, last, total, count := r.SpliceOut(n1, n1, demandOf(demands))
	require.Same(t, first, n1)
	require.Same(t, last, n1)
	require.Equal(t, 7.0, total)
	require.Equal(t, 1, count)
	require.True(t, r.IsEmpty())
	require.Equal(t, 0.0, r.Load)
}

func TestSpliceOut_Run_PreservesOrderAndDemand(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	demands := map[int]float64{1: 2, 2: 3, 3: 4}
	var nodes []*core.RouteNode
	prev := r.Head()
	for _, id := range []int{1, 2, 3} {
		n := &core.RouteNode{ID: id}
		require.NoError(t, r.InsertAfter(prev, n, demands[id]))
		nodes = append(nodes, n)
		prev = n
	}

	first, last, total, count := r.SpliceOut(nodes[0], nodes[1], demandOf(demands))
	require.Equal(t, 5.0, total)
	require.Equal(t, 2, count)
	require.Equal(t, 1, r.Len())
	require.Equal(t, 4.0, r.Load)
	require.Same(t, r.First(), nodes[2])

	// Re-insert the run elsewhere on the same route, after the remaining node.
	require.NoError(t, r.InsertRunAfter(nodes[2], first, last, count, total))
	require.Equal(t, 3, r.Len())
	require.Equal(t, 9.0, r.Load)
	require.Equal(t, []int{3, 1, 2}, idsOf(r))
}

func idsOf(r *core.Route) []int {
	var out []int
	r.ForEachInterior(func(n *core.RouteNode) bool {
		out = append(out, n.ID)
		return true
	})
	return out
}

func TestClone_IsIndependentDeepCopy(t *testing.T) {
	r := core.NewRoute(0, 10, 2)
	demands := map[int]float64{1: 2, 2: 3}
	prev := r.Head()
	for _, id := range []int{1, 2} {
		n := &core.RouteNode{ID: id, Aest: float64(id) * 10}
		require.NoError(t, r.InsertAfter(prev, n, demands[id]))
		prev = n
	}

	clone := r.Clone()
	require.Equal(t, idsOf(r), idsOf(clone))
	require.Equal(t, r.Load, clone.Load)
	require.Equal(t, r.Workers, clone.Workers)

	// Mutating the clone must never affect the original.
	clone.Find(1).Aest = 999
	require.NotEqual(t, clone.Find(1).Aest, r.Find(1).Aest)

	_, _, _, _ = clone.SpliceOut(clone.First(), clone.First(), demandOf(demands))
	require.Equal(t, 2, r.Len())
	require.Equal(t, 1, clone.Len())
}

func TestRunAfter(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	prev := r.Head()
	var nodes []*core.RouteNode
	for _, id := range []int{1, 2, 3} {
		n := &core.RouteNode{ID: id}
		require.NoError(t, r.InsertAfter(prev, n, 1))
		nodes = append(nodes, n)
		prev = n
	}

	last := core.RunAfter(nodes[0], 2)
	require.Same(t, last, nodes[1])

	require.Nil(t, core.RunAfter(nodes[2], 2))
}

func TestIsDepot(t *testing.T) {
	r := core.NewRoute(0, 10, 1)
	require.True(t, r.Head().IsDepot())
	require.True(t, r.Tail().IsDepot())

	n := &core.RouteNode{ID: 1}
	require.NoError(t, r.InsertAfter(r.Head(), n, 1))
	require.False(t, n.IsDepot())
	require.True(t, n.IsInterior())
}
