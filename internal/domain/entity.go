package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Member struct {
	ID         int32      `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	BirthDate  *time.Time `json:"birth_date"`
	DeathDate  *time.Time `json:"death_date"`
	Gender     *Gender    `json:"gender"`
	PictureURL *string    `json:"picture_url"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Marriage links two members. Stored pairs are normalised so that
// Spouse1ID < Spouse2ID.
type Marriage struct {
	ID           int32      `json:"id"`
	Spouse1ID    int32      `json:"spouse1_id"`
	Spouse2ID    int32      `json:"spouse2_id"`
	MarriageDate *time.Time `json:"marriage_date"`
	DivorceDate  *time.Time `json:"divorce_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Other returns the spouse of id in m, or 0 when id is not part of m.
func (m Marriage) Other(id int32) int32 {
	switch id {
	case m.Spouse1ID:
		return m.Spouse2ID
	case m.Spouse2ID:
		return m.Spouse1ID
	}
	return 0
}

func (m Marriage) Divorced() bool { return m.DivorceDate != nil }

type ParentChild struct {
	ID        int32     `json:"id"`
	ParentID  int32     `json:"parent_id"`
	ChildID   int32     `json:"child_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FamilyNetwork is a point-in-time snapshot of the three collections.
type FamilyNetwork struct {
	Members     []Member      `json:"members"`
	Marriages   []Marriage    `json:"marriages"`
	ParentChild []ParentChild `json:"parent_child"`
}

type Spouse struct {
	Spouse   Member   `json:"spouse"`
	Marriage Marriage `json:"marriage"`
}

type MemberRelationships struct {
	Member   Member   `json:"member"`
	Parents  []Member `json:"parents"`
	Children []Member `json:"children"`
	Spouses  []Spouse `json:"spouses"`
}
