package handoff

// GraphIDInterner is the local `graph_id ↔ interned index` bimap spec.md §9
// calls for: a way to patch source→target atom references before
// persistence ids exist, without repeatedly hashing the same string graph
// id at every lookup site.
type GraphIDInterner struct {
	idToIndex map[string]int
	indexToID []string
}

// NewGraphIDInterner builds an empty interner.
func NewGraphIDInterner() *GraphIDInterner {
	return &GraphIDInterner{idToIndex: make(map[string]int)}
}

// Intern assigns id a stable index, returning its existing one if already
// interned.
func (g *GraphIDInterner) Intern(id string) int {
	if idx, ok := g.idToIndex[id]; ok {
		return idx
	}
	idx := len(g.indexToID)
	g.idToIndex[id] = idx
	g.indexToID = append(g.indexToID, id)
	return idx
}

// Index returns id's interned index, if it has been interned.
func (g *GraphIDInterner) Index(id string) (int, bool) {
	idx, ok := g.idToIndex[id]
	return idx, ok
}

// ID returns the graph id at idx, if any.
func (g *GraphIDInterner) ID(idx int) (string, bool) {
	if idx < 0 || idx >= len(g.indexToID) {
		return "", false
	}
	return g.indexToID[idx], true
}

// Len reports how many ids have been interned.
func (g *GraphIDInterner) Len() int {
	return len(g.indexToID)
}
