// Package family derives read models from a snapshot of members, marriages
// and parent-child edges: a relationship index, statistics, a network layout
// and per-member relationship details. Everything here is pure and
// synchronous; callers own fetching and refreshing the snapshot.
package family

import "famtree/internal/domain"

// Index is a lookup structure over one snapshot. It is immutable once built.
type Index struct {
	members   []domain.Member
	marriages []domain.Marriage
	edges     []domain.ParentChild

	byID       map[int32]int
	marriageOf map[int32][]domain.Marriage
	childrenOf map[int32][]domain.ParentChild
	parentsOf  map[int32][]domain.ParentChild
}

// BuildIndex indexes the given collections in O(n). The input slices are
// copied, never modified.
func BuildIndex(members []domain.Member, marriages []domain.Marriage, edges []domain.ParentChild) *Index {
	ix := &Index{
		members:    append([]domain.Member(nil), members...),
		marriages:  append([]domain.Marriage(nil), marriages...),
		edges:      append([]domain.ParentChild(nil), edges...),
		byID:       make(map[int32]int, len(members)),
		marriageOf: make(map[int32][]domain.Marriage),
		childrenOf: make(map[int32][]domain.ParentChild),
		parentsOf:  make(map[int32][]domain.ParentChild),
	}
	for i, m := range ix.members {
		ix.byID[m.ID] = i
	}
	for _, m := range ix.marriages {
		ix.marriageOf[m.Spouse1ID] = append(ix.marriageOf[m.Spouse1ID], m)
		if m.Spouse2ID != m.Spouse1ID {
			ix.marriageOf[m.Spouse2ID] = append(ix.marriageOf[m.Spouse2ID], m)
		}
	}
	for _, e := range ix.edges {
		ix.childrenOf[e.ParentID] = append(ix.childrenOf[e.ParentID], e)
		ix.parentsOf[e.ChildID] = append(ix.parentsOf[e.ChildID], e)
	}
	return ix
}

// FromNetwork is BuildIndex over a FamilyNetwork.
func FromNetwork(n domain.FamilyNetwork) *Index {
	return BuildIndex(n.Members, n.Marriages, n.ParentChild)
}

func (ix *Index) Member(id int32) (domain.Member, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return domain.Member{}, false
	}
	return ix.members[i], true
}

// Members returns the members in snapshot order.
func (ix *Index) Members() []domain.Member { return ix.members }

func (ix *Index) Marriages() []domain.Marriage { return ix.marriages }

func (ix *Index) Edges() []domain.ParentChild { return ix.edges }

// MarriagesOf returns every marriage where id is either spouse.
func (ix *Index) MarriagesOf(id int32) []domain.Marriage { return ix.marriageOf[id] }

// ChildEdges returns the edges where id is the parent.
func (ix *Index) ChildEdges(id int32) []domain.ParentChild { return ix.childrenOf[id] }

// ParentEdges returns the edges where id is the child.
func (ix *Index) ParentEdges(id int32) []domain.ParentChild { return ix.parentsOf[id] }
