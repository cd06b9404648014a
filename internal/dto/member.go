package dto

import (
	"time"

	"famtree/internal/domain"
)

const DateLayout = "2006-01-02"

type CreateMemberRequest struct {
	FirstName  string  `json:"first_name" validate:"required,max=100"`
	LastName   string  `json:"last_name" validate:"required,max=100"`
	BirthDate  *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	DeathDate  *string `json:"death_date" validate:"omitempty,datetime=2006-01-02"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female other"`
	PictureURL *string `json:"picture_url" validate:"omitempty,url"`
}

// UpdateMemberRequest is a partial update: absent fields are kept, null
// clears the nullable ones.
type UpdateMemberRequest struct {
	FirstName  *string          `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string          `json:"last_name" validate:"omitempty,max=100"`
	BirthDate  Optional[string] `json:"birth_date"`
	DeathDate  Optional[string] `json:"death_date"`
	Gender     Optional[string] `json:"gender"`
	PictureURL Optional[string] `json:"picture_url"`
}

type MemberResponse struct {
	ID         int32   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	BirthDate  *string `json:"birth_date"`
	DeathDate  *string `json:"death_date"`
	Gender     *string `json:"gender"`
	PictureURL *string `json:"picture_url"`
	CreatedAt  string  `json:"created_at"`
}

type SpouseResponse struct {
	Spouse   MemberResponse   `json:"spouse"`
	Marriage MarriageResponse `json:"marriage"`
}

type MemberDetailsResponse struct {
	Member   MemberResponse   `json:"member"`
	Parents  []MemberResponse `json:"parents"`
	Children []MemberResponse `json:"children"`
	Spouses  []SpouseResponse `json:"spouses"`
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func NewMemberResponse(m domain.Member) MemberResponse {
	out := MemberResponse{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		BirthDate:  FormatDate(m.BirthDate),
		DeathDate:  FormatDate(m.DeathDate),
		PictureURL: m.PictureURL,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.Gender != nil {
		g := string(*m.Gender)
		out.Gender = &g
	}
	return out
}

func NewMemberList(ms []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMemberResponse(m))
	}
	return out
}

func NewMemberDetailsResponse(r domain.MemberRelationships) MemberDetailsResponse {
	out := MemberDetailsResponse{
		Member:   NewMemberResponse(r.Member),
		Parents:  NewMemberList(r.Parents),
		Children: NewMemberList(r.Children),
		Spouses:  make([]SpouseResponse, 0, len(r.Spouses)),
	}
	for _, s := range r.Spouses {
		out.Spouses = append(out.Spouses, SpouseResponse{
			Spouse:   NewMemberResponse(s.Spouse),
			Marriage: NewMarriageResponse(s.Marriage),
		})
	}
	return out
}
