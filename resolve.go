package minirepl

import (
	radix "github.com/armon/go-radix"
)

// prefixIndex is the set of all registered and reserved command names,
// queryable by prefix. It is populated once during Build and never mutated
// afterwards, which is what makes it safe to query without synchronization.
type prefixIndex struct {
	tree *radix.Tree
}

func newPrefixIndex() *prefixIndex {
	return &prefixIndex{tree: radix.New()}
}

func (x *prefixIndex) insert(name string) {
	x.tree.Insert(name, struct{}{})
}

func (x *prefixIndex) contains(name string) bool {
	_, ok := x.tree.Get(name)
	return ok
}

// candidates returns all member names having the given prefix, in
// lexicographic order.
func (x *prefixIndex) candidates(prefix string) []string {
	var out []string
	x.tree.WalkPrefix(prefix, func(s string, _ interface{}) bool {
		out = append(out, s)
		return false
	})
	return out
}

// resolution is the outcome of matching a typed prefix against the index.
type resolution struct {
	// Name is the resolved command name; only meaningful when Found.
	Name string
	// Found reports whether the prefix resolved to exactly one name.
	Found bool
	// Exact reports that the prefix itself is a member name.
	Exact bool
	// Candidates are all names sharing the prefix, sorted lexicographically.
	Candidates []string
}

// resolve applies the name-prediction policy.
//
// An exact match always wins, no matter how many longer names share the
// prefix. A unique non-exact prefix resolves only when prediction is enabled.
// Anything else is unresolved and reported through Candidates.
func resolve(idx *prefixIndex, prefix string, predict bool) resolution {
	cands := idx.candidates(prefix)
	exact := idx.contains(prefix)

	switch {
	case exact:
		return resolution{Name: prefix, Found: true, Exact: true, Candidates: cands}
	case predict && len(cands) == 1:
		return resolution{Name: cands[0], Found: true, Candidates: cands}
	default:
		return resolution{Candidates: cands}
	}
}

// listCandidates reports whether a failed resolution should print the
// candidate list in addition to "Command not found". The list appears when
// the prefix is genuinely ambiguous, or when prediction is disabled and
// exactly one non-exact completion exists; a prefix matching nothing prints
// no list at all.
func (r resolution) listCandidates(predict bool) bool {
	if len(r.Candidates) > 1 {
		return true
	}
	return !predict && !r.Exact && len(r.Candidates) == 1
}
