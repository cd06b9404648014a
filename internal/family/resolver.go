package family

import (
	"fmt"

	"famtree/internal/domain"
)

// ResolveMember returns the parents, children and spouses of id. An unknown
// id yields domain.ErrNotFound; a member with no relationships yields empty
// (non-nil) lists. References to members missing from the snapshot are
// skipped.
func ResolveMember(ix *Index, id int32) (*domain.MemberRelationships, error) {
	m, ok := ix.Member(id)
	if !ok {
		return nil, fmt.Errorf("member %d: %w", id, domain.ErrNotFound)
	}
	out := &domain.MemberRelationships{
		Member:   m,
		Parents:  []domain.Member{},
		Children: []domain.Member{},
		Spouses:  []domain.Spouse{},
	}
	for _, e := range ix.ParentEdges(id) {
		if p, ok := ix.Member(e.ParentID); ok {
			out.Parents = append(out.Parents, p)
		}
	}
	for _, e := range ix.ChildEdges(id) {
		if c, ok := ix.Member(e.ChildID); ok {
			out.Children = append(out.Children, c)
		}
	}
	for _, mr := range ix.MarriagesOf(id) {
		other := mr.Other(id)
		if other == id {
			continue
		}
		if s, ok := ix.Member(other); ok {
			out.Spouses = append(out.Spouses, domain.Spouse{Spouse: s, Marriage: mr})
		}
	}
	return out, nil
}
