package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"famtree/internal/domain"
	"famtree/internal/family"
)

type familyUC struct {
	repo domain.FamilyRepository
	now  func() time.Time
}

func NewFamilyUC(r domain.FamilyRepository) domain.FamilyUsecase {
	return &familyUC{repo: r, now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

func validateMember(m domain.Member) error {
	if m.FirstName == "" {
		return invalid("first_name is required")
	}
	if m.LastName == "" {
		return invalid("last_name is required")
	}
	if m.Gender != nil && !m.Gender.Valid() {
		return invalid("unknown gender %q", *m.Gender)
	}
	if m.BirthDate != nil && m.DeathDate != nil && m.DeathDate.Before(*m.BirthDate) {
		return invalid("death_date is before birth_date")
	}
	return nil
}

func validateMarriageDates(m domain.Marriage) error {
	if m.MarriageDate != nil && m.DivorceDate != nil && m.DivorceDate.Before(*m.MarriageDate) {
		return invalid("divorce_date is before marriage_date")
	}
	return nil
}

func (u *familyUC) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return u.repo.ListMembers(ctx)
}

func (u *familyUC) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return u.repo.GetMember(ctx, id)
}

func (u *familyUC) CreateMember(ctx context.Context, m domain.Member) (*domain.Member, error) {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	if err := validateMember(m); err != nil {
		return nil, err
	}
	return u.repo.CreateMember(ctx, m)
}

func (u *familyUC) UpdateMember(ctx context.Context, id int32, p domain.MemberPatch) (*domain.Member, error) {
	cur, err := u.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return cur, nil
	}
	next := p.Apply(*cur)
	next.FirstName = strings.TrimSpace(next.FirstName)
	next.LastName = strings.TrimSpace(next.LastName)
	if err := validateMember(next); err != nil {
		return nil, err
	}
	return u.repo.UpdateMember(ctx, next)
}

func (u *familyUC) MemberDetails(ctx context.Context, id int32) (*domain.MemberRelationships, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	n, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return family.ResolveMember(family.FromNetwork(*n), id)
}

func (u *familyUC) ListMarriages(ctx context.Context) ([]domain.Marriage, error) {
	return u.repo.ListMarriages(ctx)
}

// requireMembers checks that every id refers to a stored member.
func (u *familyUC) requireMembers(ctx context.Context, role string, ids ...int32) error {
	for _, id := range ids {
		if id <= 0 {
			return invalid("%s id must be positive", role)
		}
		if _, err := u.repo.GetMember(ctx, id); err != nil {
			return fmt.Errorf("%s %d: %w", role, id, err)
		}
	}
	return nil
}

// CreateMarriage stores the pair with the lower id as spouse 1, so a
// couple can only be married once whatever order the ids arrive in.
func (u *familyUC) CreateMarriage(ctx context.Context, m domain.Marriage) (*domain.Marriage, error) {
	if m.Spouse1ID == m.Spouse2ID {
		return nil, invalid("a person cannot marry themselves")
	}
	if err := validateMarriageDates(m); err != nil {
		return nil, err
	}
	if err := u.requireMembers(ctx, "spouse", m.Spouse1ID, m.Spouse2ID); err != nil {
		return nil, err
	}
	if m.Spouse1ID > m.Spouse2ID {
		m.Spouse1ID, m.Spouse2ID = m.Spouse2ID, m.Spouse1ID
	}
	return u.repo.CreateMarriage(ctx, m)
}

func (u *familyUC) UpdateMarriage(ctx context.Context, id int32, p domain.MarriagePatch) (*domain.Marriage, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	cur, err := u.repo.GetMarriage(ctx, id)
	if err != nil {
		return nil, err
	}
	next := p.Apply(*cur)
	if err := validateMarriageDates(next); err != nil {
		return nil, err
	}
	return u.repo.UpdateMarriage(ctx, next)
}

func (u *familyUC) DeleteMarriage(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return u.repo.DeleteMarriage(ctx, id)
}

func (u *familyUC) ListParentChild(ctx context.Context) ([]domain.ParentChild, error) {
	return u.repo.ListParentChild(ctx)
}

func (u *familyUC) CreateParentChild(ctx context.Context, pc domain.ParentChild) (*domain.ParentChild, error) {
	if pc.ParentID == pc.ChildID {
		return nil, invalid("a person cannot be their own parent")
	}
	if err := u.requireMembers(ctx, "parent", pc.ParentID); err != nil {
		return nil, err
	}
	if err := u.requireMembers(ctx, "child", pc.ChildID); err != nil {
		return nil, err
	}
	return u.repo.CreateParentChild(ctx, pc)
}

func (u *familyUC) DeleteParentChild(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return u.repo.DeleteParentChild(ctx, id)
}

// Snapshot loads the three collections. Slices are never nil.
func (u *familyUC) Snapshot(ctx context.Context) (*domain.FamilyNetwork, error) {
	members, err := u.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	marriages, err := u.repo.ListMarriages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list marriages: %w", err)
	}
	edges, err := u.repo.ListParentChild(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parent-child: %w", err)
	}
	n := &domain.FamilyNetwork{Members: members, Marriages: marriages, ParentChild: edges}
	if n.Members == nil {
		n.Members = []domain.Member{}
	}
	if n.Marriages == nil {
		n.Marriages = []domain.Marriage{}
	}
	if n.ParentChild == nil {
		n.ParentChild = []domain.ParentChild{}
	}
	return n, nil
}

func (u *familyUC) Network(ctx context.Context, c domain.Canvas) (*domain.Layout, error) {
	if c.Width <= 0 || c.Height <= 0 {
		c = domain.DefaultCanvas
	}
	n, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	l := family.ComputeLayout(family.FromNetwork(*n), c)
	return &l, nil
}

func (u *familyUC) Statistics(ctx context.Context) (*domain.Statistics, error) {
	n, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	st := family.ComputeStatistics(family.FromNetwork(*n), u.now())
	return &st, nil
}

// Import creates every record of n as new rows in one store transaction.
// Ids in n are only used to link marriages and parent-child records to the
// members of n; the returned network carries the ids assigned by the store.
func (u *familyUC) Import(ctx context.Context, n domain.FamilyNetwork) (*domain.FamilyNetwork, error) {
	prepared, err := prepareImport(n)
	if err != nil {
		return nil, err
	}
	out, err := u.repo.ImportNetwork(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	return out, nil
}

type couple struct{ a, b int32 }

// prepareImport applies the single-record rules to every record of n so
// that a bad document is rejected before anything is written.
func prepareImport(n domain.FamilyNetwork) (domain.FamilyNetwork, error) {
	out := domain.FamilyNetwork{
		Members:     make([]domain.Member, 0, len(n.Members)),
		Marriages:   make([]domain.Marriage, 0, len(n.Marriages)),
		ParentChild: make([]domain.ParentChild, 0, len(n.ParentChild)),
	}
	known := make(map[int32]bool, len(n.Members))
	for _, m := range n.Members {
		if known[m.ID] {
			return out, fmt.Errorf("import member %d: %w", m.ID, invalid("duplicate member id"))
		}
		known[m.ID] = true
		m.FirstName = strings.TrimSpace(m.FirstName)
		m.LastName = strings.TrimSpace(m.LastName)
		if err := validateMember(m); err != nil {
			return out, fmt.Errorf("import member %d: %w", m.ID, err)
		}
		out.Members = append(out.Members, m)
	}
	requireKnown := func(role string, ids ...int32) error {
		for _, id := range ids {
			if !known[id] {
				return invalid("unknown %s id %d", role, id)
			}
		}
		return nil
	}

	married := make(map[couple]bool, len(n.Marriages))
	for _, m := range n.Marriages {
		if m.Spouse1ID == m.Spouse2ID {
			return out, fmt.Errorf("import marriage %d: %w", m.ID, invalid("a person cannot marry themselves"))
		}
		if err := validateMarriageDates(m); err != nil {
			return out, fmt.Errorf("import marriage %d: %w", m.ID, err)
		}
		if err := requireKnown("spouse", m.Spouse1ID, m.Spouse2ID); err != nil {
			return out, fmt.Errorf("import marriage %d: %w", m.ID, err)
		}
		m.Spouse1ID, m.Spouse2ID = min(m.Spouse1ID, m.Spouse2ID), max(m.Spouse1ID, m.Spouse2ID)
		key := couple{m.Spouse1ID, m.Spouse2ID}
		if married[key] {
			return out, fmt.Errorf("import marriage %d: %w", m.ID, domain.ErrConflict)
		}
		married[key] = true
		out.Marriages = append(out.Marriages, m)
	}

	linked := make(map[couple]bool, len(n.ParentChild))
	for _, e := range n.ParentChild {
		if e.ParentID == e.ChildID {
			return out, fmt.Errorf("import parent-child %d: %w", e.ID, invalid("a person cannot be their own parent"))
		}
		if err := requireKnown("parent", e.ParentID); err != nil {
			return out, fmt.Errorf("import parent-child %d: %w", e.ID, err)
		}
		if err := requireKnown("child", e.ChildID); err != nil {
			return out, fmt.Errorf("import parent-child %d: %w", e.ID, err)
		}
		key := couple{e.ParentID, e.ChildID}
		if linked[key] {
			return out, fmt.Errorf("import parent-child %d: %w", e.ID, domain.ErrConflict)
		}
		linked[key] = true
		out.ParentChild = append(out.ParentChild, e)
	}
	return out, nil
}
