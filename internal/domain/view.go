package domain

// GenderUnknown is the distribution bucket for members without a gender.
const GenderUnknown = "unknown"

type Statistics struct {
	MemberCount          int            `json:"member_count"`
	GenderDistribution   map[string]int `json:"gender_distribution"`
	ActiveMarriages      int            `json:"active_marriages"`
	Divorced             int            `json:"divorced"`
	TotalMarriages       int            `json:"total_marriages"`
	ParentChildLinks     int            `json:"parent_child_links"`
	MembersWithBirthDate int            `json:"members_with_birth_date"`
	// AverageAge is nil when no member has a birth date.
	AverageAge  *float64 `json:"average_age"`
	Generations int      `json:"generations"`
}

type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var DefaultCanvas = Canvas{Width: 800, Height: 600}

type EdgeKind string

const (
	EdgeMarriage    EdgeKind = "marriage"
	EdgeParentChild EdgeKind = "parent-child"
)

type Node struct {
	ID int32   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge is a renderable connection. RecordID is the marriage or
// parent-child row it was built from.
type Edge struct {
	From     int32    `json:"from"`
	To       int32    `json:"to"`
	Kind     EdgeKind `json:"kind"`
	RecordID int32    `json:"record_id"`
}

type Layout struct {
	Canvas Canvas `json:"canvas"`
	Nodes  []Node `json:"nodes"`
	Edges  []Edge `json:"edges"`
}
