package dto

import (
	"time"

	"famtree/internal/domain"
)

type CreateMarriageRequest struct {
	Spouse1ID    int32   `json:"spouse1_id" validate:"required,gt=0"`
	Spouse2ID    int32   `json:"spouse2_id" validate:"required,gt=0,nefield=Spouse1ID"`
	MarriageDate *string `json:"marriage_date" validate:"omitempty,datetime=2006-01-02"`
	DivorceDate  *string `json:"divorce_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMarriageRequest struct {
	MarriageDate Optional[string] `json:"marriage_date"`
	DivorceDate  Optional[string] `json:"divorce_date"`
}

type MarriageResponse struct {
	ID           int32   `json:"id"`
	Spouse1ID    int32   `json:"spouse1_id"`
	Spouse2ID    int32   `json:"spouse2_id"`
	MarriageDate *string `json:"marriage_date"`
	DivorceDate  *string `json:"divorce_date"`
	CreatedAt    string  `json:"created_at"`
}

func NewMarriageResponse(m domain.Marriage) MarriageResponse {
	return MarriageResponse{
		ID:           m.ID,
		Spouse1ID:    m.Spouse1ID,
		Spouse2ID:    m.Spouse2ID,
		MarriageDate: FormatDate(m.MarriageDate),
		DivorceDate:  FormatDate(m.DivorceDate),
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewMarriageList(ms []domain.Marriage) []MarriageResponse {
	out := make([]MarriageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMarriageResponse(m))
	}
	return out
}

type CreateParentChildRequest struct {
	ParentID int32 `json:"parent_id" validate:"required,gt=0"`
	ChildID  int32 `json:"child_id" validate:"required,gt=0,nefield=ParentID"`
}

type ParentChildResponse struct {
	ID        int32  `json:"id"`
	ParentID  int32  `json:"parent_id"`
	ChildID   int32  `json:"child_id"`
	CreatedAt string `json:"created_at"`
}

func NewParentChildResponse(pc domain.ParentChild) ParentChildResponse {
	return ParentChildResponse{
		ID:        pc.ID,
		ParentID:  pc.ParentID,
		ChildID:   pc.ChildID,
		CreatedAt: pc.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewParentChildList(es []domain.ParentChild) []ParentChildResponse {
	out := make([]ParentChildResponse, 0, len(es))
	for _, e := range es {
		out = append(out, NewParentChildResponse(e))
	}
	return out
}
