package repository

import (
	"fmt"

	"famtree/internal/domain"
)

// networkWriter inserts a network through one open transaction.
type networkWriter struct {
	member   func(domain.Member) (*domain.Member, error)
	marriage func(domain.Marriage) (*domain.Marriage, error)
	edge     func(domain.ParentChild) (*domain.ParentChild, error)
}

// write creates members first, then marriages and edges with their member
// ids swapped for the stored ones. Spouse pairs are re-normalised after the
// swap.
func (w networkWriter) write(n domain.FamilyNetwork) (*domain.FamilyNetwork, error) {
	out := &domain.FamilyNetwork{
		Members:     make([]domain.Member, 0, len(n.Members)),
		Marriages:   make([]domain.Marriage, 0, len(n.Marriages)),
		ParentChild: make([]domain.ParentChild, 0, len(n.ParentChild)),
	}
	ids := make(map[int32]int32, len(n.Members))
	for _, m := range n.Members {
		if _, dup := ids[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate member id %d", domain.ErrValidation, m.ID)
		}
		created, err := w.member(m)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", m.ID, err)
		}
		ids[m.ID] = created.ID
		out.Members = append(out.Members, *created)
	}
	remap := func(id int32) (int32, error) {
		v, ok := ids[id]
		if !ok {
			return 0, fmt.Errorf("%w: unknown member id %d", domain.ErrValidation, id)
		}
		return v, nil
	}

	for _, m := range n.Marriages {
		a, err := remap(m.Spouse1ID)
		if err != nil {
			return nil, fmt.Errorf("marriage %d: %w", m.ID, err)
		}
		b, err := remap(m.Spouse2ID)
		if err != nil {
			return nil, fmt.Errorf("marriage %d: %w", m.ID, err)
		}
		m.Spouse1ID, m.Spouse2ID = min(a, b), max(a, b)
		created, err := w.marriage(m)
		if err != nil {
			return nil, fmt.Errorf("marriage %d: %w", m.ID, err)
		}
		out.Marriages = append(out.Marriages, *created)
	}

	for _, e := range n.ParentChild {
		var err error
		if e.ParentID, err = remap(e.ParentID); err != nil {
			return nil, fmt.Errorf("parent-child %d: %w", e.ID, err)
		}
		if e.ChildID, err = remap(e.ChildID); err != nil {
			return nil, fmt.Errorf("parent-child %d: %w", e.ID, err)
		}
		created, err := w.edge(e)
		if err != nil {
			return nil, fmt.Errorf("parent-child %d: %w", e.ID, err)
		}
		out.ParentChild = append(out.ParentChild, *created)
	}
	return out, nil
}
