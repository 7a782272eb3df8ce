package minirepl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestIndex(names ...string) *prefixIndex {
	idx := newPrefixIndex()
	for _, n := range names {
		idx.insert(n)
	}
	return idx
}

func TestResolve_UniquePrefixPrediction(t *testing.T) {
	idx := newTestIndex("move", "make")

	res := resolve(idx, "mo", true)
	require.True(t, res.Found)
	require.Equal(t, "move", res.Name)
	require.False(t, res.Exact)
}

func TestResolve_UniquePrefixWithoutPrediction(t *testing.T) {
	idx := newTestIndex("move", "make")

	res := resolve(idx, "mo", false)
	require.False(t, res.Found)
	require.Equal(t, []string{"move"}, res.Candidates)

	// prediction disabled with exactly one non-exact candidate: list it
	require.True(t, res.listCandidates(false))
}

func TestResolve_AmbiguousRegardlessOfPrediction(t *testing.T) {
	idx := newTestIndex("move", "make")

	for _, predict := range []bool{true, false} {
		res := resolve(idx, "m", predict)
		require.False(t, res.Found, "predict=%t", predict)
		require.Equal(t, []string{"make", "move"}, res.Candidates)
		require.True(t, res.listCandidates(predict))
	}
}

func TestResolve_ExactMatchWins(t *testing.T) {
	idx := newTestIndex("mov", "move", "movement")

	for _, predict := range []bool{true, false} {
		res := resolve(idx, "mov", predict)
		require.True(t, res.Found, "predict=%t", predict)
		require.True(t, res.Exact)
		require.Equal(t, "mov", res.Name)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	idx := newTestIndex("move", "make")

	for _, predict := range []bool{true, false} {
		res := resolve(idx, "zzz", predict)
		require.False(t, res.Found)
		require.Empty(t, res.Candidates)

		// nothing matched: no candidate list, just "not found"
		require.False(t, res.listCandidates(predict))
	}
}

func TestResolve_CandidatesSorted(t *testing.T) {
	idx := newTestIndex("cc", "ca", "cb")

	res := resolve(idx, "c", true)
	require.Equal(t, []string{"ca", "cb", "cc"}, res.Candidates)
}

func TestPrefixIndex_Contains(t *testing.T) {
	idx := newTestIndex("move")

	require.True(t, idx.contains("move"))
	require.False(t, idx.contains("mov"))
	require.False(t, idx.contains("moves"))
}
