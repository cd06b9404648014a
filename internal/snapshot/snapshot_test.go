package snapshot

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"famtree/internal/domain"
)

const family = `
members:
  - key: ada
    first_name: Ada
    last_name: King
    birth_date: 1815-12-10
    death_date: "1852-11-27"
    gender: Female
  - key: william
    first_name: William
    last_name: King
  - key: byron
    first_name: Byron
    last_name: King
    picture_url: https://img.test/b.png
marriages:
  - spouses: [ada, william]
    marriage_date: 1835-07-08
parents:
  - parent: ada
    child: byron
  - parent: william
    child: byron
`

func TestLoadYAML(t *testing.T) {
	n, err := LoadYAML(strings.NewReader(family))
	require.NoError(t, err)

	require.Len(t, n.Members, 3)
	ada := n.Members[0]
	assert.Equal(t, int32(1), ada.ID)
	require.NotNil(t, ada.BirthDate)
	assert.Equal(t, 1815, ada.BirthDate.Year())
	require.NotNil(t, ada.DeathDate)
	require.NotNil(t, ada.Gender)
	assert.Equal(t, domain.GenderFemale, *ada.Gender)
	assert.Nil(t, n.Members[1].Gender)
	require.NotNil(t, n.Members[2].PictureURL)

	require.Len(t, n.Marriages, 1)
	assert.Equal(t, int32(1), n.Marriages[0].Spouse1ID)
	assert.Equal(t, int32(2), n.Marriages[0].Spouse2ID)
	require.NotNil(t, n.Marriages[0].MarriageDate)

	require.Len(t, n.ParentChild, 2)
	assert.Equal(t, domain.ParentChild{ID: 2, ParentID: 2, ChildID: 3}, n.ParentChild[1])
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing_key", "members:\n  - first_name: A\n", "key is required"},
		{"duplicate_key", "members:\n  - key: a\n  - key: a\n", "duplicate key"},
		{"bad_date", "members:\n  - key: a\n    birth_date: 12/10/1815\n", "birth_date"},
		{"bad_gender", "members:\n  - key: a\n    gender: robot\n", "unknown gender"},
		{"unknown_spouse", "members:\n  - key: a\nmarriages:\n  - spouses: [a, b]\n", `unknown member key "b"`},
		{"one_spouse", "members:\n  - key: a\nmarriages:\n  - spouses: [a]\n", "exactly two"},
		{"unknown_child", "members:\n  - key: a\nparents:\n  - parent: a\n    child: z\n", `unknown member key "z"`},
		{"unknown_field", "members:\n  - key: a\n    nickname: x\n", "nickname"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	n, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, n.Members)
	assert.NotNil(t, n.Members)
}

func TestBackupJSON(t *testing.T) {
	bd := time.Date(1900, 1, 2, 0, 0, 0, 0, time.UTC)
	in := domain.FamilyNetwork{
		Members:     []domain.Member{{ID: 1, FirstName: "A", LastName: "B", BirthDate: &bd}},
		Marriages:   []domain.Marriage{},
		ParentChild: []domain.ParentChild{},
	}
	var buf bytes.Buffer
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	require.NoError(t, WriteJSON(&buf, in, at))
	assert.Contains(t, buf.String(), `"version": "1"`)
	assert.Contains(t, buf.String(), `"parent_child": []`)

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.True(t, got.ExportedAt.Equal(at))
	require.Len(t, got.Members, 1)
	assert.True(t, got.Members[0].BirthDate.Equal(bd))
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"version":"9"}`))
	assert.ErrorContains(t, err, "unsupported backup version")

	_, err = ReadJSON(strings.NewReader(`{`))
	assert.ErrorContains(t, err, "decode backup")

	got, err := ReadJSON(strings.NewReader(`{"version":"1"}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Marriages)
}
