//go:generate mockery --name=FamilyUsecase --output=../mocks --case=underscore
package domain

import "context"

type FamilyUsecase interface {
	ListMembers(ctx context.Context) ([]Member, error)
	GetMember(ctx context.Context, id int32) (*Member, error)
	CreateMember(ctx context.Context, m Member) (*Member, error)
	UpdateMember(ctx context.Context, id int32, p MemberPatch) (*Member, error)
	MemberDetails(ctx context.Context, id int32) (*MemberRelationships, error)

	ListMarriages(ctx context.Context) ([]Marriage, error)
	CreateMarriage(ctx context.Context, m Marriage) (*Marriage, error)
	UpdateMarriage(ctx context.Context, id int32, p MarriagePatch) (*Marriage, error)
	DeleteMarriage(ctx context.Context, id int32) error

	ListParentChild(ctx context.Context) ([]ParentChild, error)
	CreateParentChild(ctx context.Context, pc ParentChild) (*ParentChild, error)
	DeleteParentChild(ctx context.Context, id int32) error

	Snapshot(ctx context.Context) (*FamilyNetwork, error)
	Network(ctx context.Context, c Canvas) (*Layout, error)
	Statistics(ctx context.Context) (*Statistics, error)
	Import(ctx context.Context, n FamilyNetwork) (*FamilyNetwork, error)
}
