package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"famtree/internal/domain"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	var req UpdateMemberRequest
	require.NoError(t, json.Unmarshal([]byte(`{"birth_date":"1990-01-02","death_date":null}`), &req))

	assert.True(t, req.BirthDate.Set)
	require.NotNil(t, req.BirthDate.Value)
	assert.Equal(t, "1990-01-02", *req.BirthDate.Value)

	assert.True(t, req.DeathDate.Set)
	assert.Nil(t, req.DeathDate.Value)

	assert.False(t, req.Gender.Set)
	assert.False(t, req.PictureURL.Set)
}

func TestOptional_UnmarshalJSON_WrongType(t *testing.T) {
	var req UpdateMarriageRequest
	assert.Error(t, json.Unmarshal([]byte(`{"divorce_date":12}`), &req))
}

func TestCreateRequests_Validate(t *testing.T) {
	v := validator.New()
	s := func(x string) *string { return &x }

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{"member_ok", CreateMemberRequest{FirstName: "Ada", LastName: "King", BirthDate: s("1815-12-10"), Gender: s("female")}, false},
		{"member_missing_name", CreateMemberRequest{LastName: "King"}, true},
		{"member_bad_date", CreateMemberRequest{FirstName: "A", LastName: "B", BirthDate: s("10/12/1815")}, true},
		{"member_bad_gender", CreateMemberRequest{FirstName: "A", LastName: "B", Gender: s("x")}, true},
		{"member_bad_picture", CreateMemberRequest{FirstName: "A", LastName: "B", PictureURL: s("not a url")}, true},
		{"marriage_ok", CreateMarriageRequest{Spouse1ID: 1, Spouse2ID: 2}, false},
		{"marriage_self", CreateMarriageRequest{Spouse1ID: 1, Spouse2ID: 1}, true},
		{"marriage_missing_spouse", CreateMarriageRequest{Spouse1ID: 1}, true},
		{"parent_child_ok", CreateParentChildRequest{ParentID: 1, ChildID: 2}, false},
		{"parent_child_self", CreateParentChildRequest{ParentID: 3, ChildID: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewMemberDetailsResponse(t *testing.T) {
	bd := time.Date(1950, 4, 3, 0, 0, 0, 0, time.UTC)
	g := domain.GenderMale
	got := NewMemberDetailsResponse(domain.MemberRelationships{
		Member: domain.Member{ID: 1, FirstName: "A", BirthDate: &bd, Gender: &g},
		Spouses: []domain.Spouse{{
			Spouse:   domain.Member{ID: 2},
			Marriage: domain.Marriage{ID: 9, Spouse1ID: 1, Spouse2ID: 2},
		}},
	})

	require.NotNil(t, got.Member.BirthDate)
	assert.Equal(t, "1950-04-03", *got.Member.BirthDate)
	assert.Nil(t, got.Member.DeathDate)
	require.NotNil(t, got.Member.Gender)
	assert.Equal(t, "male", *got.Member.Gender)
	assert.NotNil(t, got.Parents)
	assert.NotNil(t, got.Children)
	require.Len(t, got.Spouses, 1)
	assert.Equal(t, int32(9), got.Spouses[0].Marriage.ID)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"parents":[]`)
}

func TestNewStatisticsResponse(t *testing.T) {
	got := NewStatisticsResponse(domain.Statistics{Generations: 1})
	assert.Equal(t, AverageAgeNA, got.AverageAgeLabel)

	avg := 42.26
	got = NewStatisticsResponse(domain.Statistics{AverageAge: &avg})
	assert.Equal(t, "42.3", got.AverageAgeLabel)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"average_age":42.26`)
	assert.Contains(t, string(b), `"average_age_label":"42.3"`)
}
