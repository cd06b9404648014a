//go:generate mockery --name=FamilyRepository --output=../mocks --case=underscore
package domain

import "context"

type FamilyRepository interface {
	ListMembers(ctx context.Context) ([]Member, error)
	GetMember(ctx context.Context, id int32) (*Member, error)
	CreateMember(ctx context.Context, m Member) (*Member, error)
	UpdateMember(ctx context.Context, m Member) (*Member, error)

	ListMarriages(ctx context.Context) ([]Marriage, error)
	GetMarriage(ctx context.Context, id int32) (*Marriage, error)
	CreateMarriage(ctx context.Context, m Marriage) (*Marriage, error)
	UpdateMarriage(ctx context.Context, m Marriage) (*Marriage, error)
	DeleteMarriage(ctx context.Context, id int32) error

	ListParentChild(ctx context.Context) ([]ParentChild, error)
	CreateParentChild(ctx context.Context, pc ParentChild) (*ParentChild, error)
	DeleteParentChild(ctx context.Context, id int32) error

	// ImportNetwork inserts every record of n in one transaction, linking
	// marriages and edges through the ids n assigns to its members. Nothing
	// is stored when any insert fails.
	ImportNetwork(ctx context.Context, n FamilyNetwork) (*FamilyNetwork, error)
}
