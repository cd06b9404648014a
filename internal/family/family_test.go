package family

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"famtree/internal/domain"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func gender(g domain.Gender) *domain.Gender { return &g }

func members(ids ...int32) []domain.Member {
	out := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Member{ID: id, FirstName: "F", LastName: "L"})
	}
	return out
}

func edge(id, parent, child int32) domain.ParentChild {
	return domain.ParentChild{ID: id, ParentID: parent, ChildID: child}
}

func TestBuildIndex(t *testing.T) {
	ms := members(1, 2, 3)
	mar := []domain.Marriage{{ID: 10, Spouse1ID: 1, Spouse2ID: 2}}
	pc := []domain.ParentChild{edge(20, 1, 3), edge(21, 2, 3)}

	ix := BuildIndex(ms, mar, pc)

	t.Run("member_lookup", func(t *testing.T) {
		m, ok := ix.Member(2)
		require.True(t, ok)
		assert.Equal(t, int32(2), m.ID)

		_, ok = ix.Member(99)
		assert.False(t, ok)
	})

	t.Run("marriages_indexed_under_both_spouses", func(t *testing.T) {
		assert.Len(t, ix.MarriagesOf(1), 1)
		assert.Len(t, ix.MarriagesOf(2), 1)
		assert.Empty(t, ix.MarriagesOf(3))
	})

	t.Run("parent_child_both_directions", func(t *testing.T) {
		assert.Len(t, ix.ChildEdges(1), 1)
		assert.Len(t, ix.ParentEdges(3), 2)
		assert.Empty(t, ix.ParentEdges(1))
	})

	t.Run("unknown_ids_are_empty", func(t *testing.T) {
		assert.Empty(t, ix.MarriagesOf(42))
		assert.Empty(t, ix.ChildEdges(42))
		assert.Empty(t, ix.ParentEdges(42))
	})

	t.Run("inputs_not_shared", func(t *testing.T) {
		ms[0].FirstName = "changed"
		m, _ := ix.Member(1)
		assert.Equal(t, "F", m.FirstName)
	})
}

func TestGenerationDepth(t *testing.T) {
	tests := []struct {
		name  string
		edges []domain.ParentChild
		want  int
	}{
		{name: "no_edges", want: 1},
		{name: "single_link", edges: []domain.ParentChild{edge(1, 1, 2)}, want: 2},
		{name: "three_generations", edges: []domain.ParentChild{edge(1, 1, 2), edge(2, 2, 3)}, want: 3},
		{
			name: "longest_branch_wins",
			edges: []domain.ParentChild{
				edge(1, 1, 2), edge(2, 1, 3), edge(3, 3, 4), edge(4, 4, 5),
			},
			want: 4,
		},
		{
			name: "diamond_counts_long_path",
			edges: []domain.ParentChild{
				edge(1, 1, 2), edge(2, 2, 3), edge(3, 1, 3), edge(4, 3, 4),
			},
			want: 4,
		},
		{
			name:  "pure_cycle_has_no_root",
			edges: []domain.ParentChild{edge(1, 1, 2), edge(2, 2, 1)},
			want:  1,
		},
		{
			name: "cycle_below_root_terminates",
			edges: []domain.ParentChild{
				edge(1, 1, 2), edge(2, 2, 3), edge(3, 3, 2),
			},
			want: 3,
		},
		{
			name:  "self_loop_below_root",
			edges: []domain.ParentChild{edge(1, 1, 2), edge(2, 2, 2)},
			want:  2,
		},
		{
			name: "parent_outside_snapshot_is_not_a_root",
			edges: []domain.ParentChild{
				edge(1, 99, 3), edge(2, 3, 4), edge(3, 4, 5), edge(4, 1, 2),
			},
			want: 2,
		},
		{
			name:  "only_dangling_parents",
			edges: []domain.ParentChild{edge(1, 99, 1), edge(2, 1, 2)},
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := BuildIndex(members(1, 2, 3, 4, 5), nil, tt.edges)
			assert.Equal(t, tt.want, GenerationDepth(ix))
		})
	}
}

func TestMarriageCounts(t *testing.T) {
	ix := BuildIndex(members(1, 2, 3, 4), []domain.Marriage{
		{ID: 1, Spouse1ID: 1, Spouse2ID: 2},
		{ID: 2, Spouse1ID: 3, Spouse2ID: 4, MarriageDate: day(1990, 1, 1), DivorceDate: day(2000, 1, 1)},
	}, nil)

	active, divorced := MarriageCounts(ix)
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, divorced)
}

func TestGenderDistribution(t *testing.T) {
	ms := members(1, 2, 3, 4)
	ms[0].Gender = gender(domain.GenderMale)
	ms[1].Gender = gender(domain.GenderFemale)
	ms[2].Gender = gender(domain.GenderFemale)

	got := GenderDistribution(BuildIndex(ms, nil, nil))
	assert.Equal(t, map[string]int{"male": 1, "female": 2, domain.GenderUnknown: 1}, got)
}

func TestAverageAge(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("skips_missing_birth_date", func(t *testing.T) {
		ms := members(1, 2)
		ms[0].BirthDate = day(1980, 6, 1)
		avg, ok := AverageAge(BuildIndex(ms, nil, nil), now)
		require.True(t, ok)
		assert.InDelta(t, float64(now.Year()-1980), avg, 1e-9)
	})

	t.Run("uses_death_date", func(t *testing.T) {
		ms := members(1, 2)
		ms[0].BirthDate = day(1900, 1, 1)
		ms[0].DeathDate = day(1980, 1, 1)
		ms[1].BirthDate = day(2000, 1, 1)
		avg, ok := AverageAge(BuildIndex(ms, nil, nil), now)
		require.True(t, ok)
		assert.InDelta(t, 53.0, avg, 1e-9) // (80 + 26) / 2
	})

	t.Run("not_available", func(t *testing.T) {
		_, ok := AverageAge(BuildIndex(members(1), nil, nil), now)
		assert.False(t, ok)
	})
}

func TestComputeStatistics(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := members(1, 2, 3)
	ms[0].BirthDate = day(1950, 1, 1)
	ix := BuildIndex(ms,
		[]domain.Marriage{{ID: 1, Spouse1ID: 1, Spouse2ID: 2}},
		[]domain.ParentChild{edge(1, 1, 3), edge(2, 2, 3)},
	)

	st := ComputeStatistics(ix, now)
	assert.Equal(t, 3, st.MemberCount)
	assert.Equal(t, 1, st.ActiveMarriages)
	assert.Equal(t, 0, st.Divorced)
	assert.Equal(t, 1, st.TotalMarriages)
	assert.Equal(t, 2, st.ParentChildLinks)
	assert.Equal(t, 1, st.MembersWithBirthDate)
	assert.Equal(t, 2, st.Generations)
	require.NotNil(t, st.AverageAge)
	assert.InDelta(t, 76.0, *st.AverageAge, 1e-9)

	empty := ComputeStatistics(BuildIndex(nil, nil, nil), now)
	assert.Nil(t, empty.AverageAge)
	assert.Equal(t, 1, empty.Generations)
	assert.Empty(t, empty.GenderDistribution)
}

func TestComputeLayout(t *testing.T) {
	c := domain.DefaultCanvas
	cx, cy := c.Width/2, c.Height/2

	t.Run("empty", func(t *testing.T) {
		l := ComputeLayout(BuildIndex(nil, nil, nil), c)
		assert.Empty(t, l.Nodes)
		assert.Empty(t, l.Edges)
	})

	t.Run("single_member_centered", func(t *testing.T) {
		l := ComputeLayout(BuildIndex(members(7), nil, nil), c)
		require.Len(t, l.Nodes, 1)
		assert.Equal(t, domain.Node{ID: 7, X: cx, Y: cy}, l.Nodes[0])
	})

	t.Run("four_members_on_circle", func(t *testing.T) {
		l := ComputeLayout(BuildIndex(members(1, 2, 3, 4), nil, nil), c)
		require.Len(t, l.Nodes, 4)
		want := math.Min(c.Width, c.Height) * 0.25
		for _, n := range l.Nodes {
			assert.InDelta(t, want, math.Hypot(n.X-cx, n.Y-cy), 1e-9)
		}
		assert.InDelta(t, cx+want, l.Nodes[0].X, 1e-9)
		assert.InDelta(t, cy, l.Nodes[0].Y, 1e-9)
	})

	t.Run("ten_members_on_grid", func(t *testing.T) {
		l := ComputeLayout(BuildIndex(members(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), nil, nil), c)
		require.Len(t, l.Nodes, 10)
		xs, ys := map[float64]bool{}, map[float64]bool{}
		for _, n := range l.Nodes {
			xs[n.X] = true
			ys[n.Y] = true
		}
		assert.Len(t, xs, 4)
		assert.Len(t, ys, 3)
		assert.Equal(t, domain.Node{ID: 1, X: 100, Y: 100}, l.Nodes[0])
		assert.Equal(t, domain.Node{ID: 4, X: 700, Y: 100}, l.Nodes[3])
		assert.Equal(t, domain.Node{ID: 9, X: 100, Y: 500}, l.Nodes[8])
	})

	t.Run("small_canvas_grid_stays_inside", func(t *testing.T) {
		small := domain.Canvas{Width: 120, Height: 90}
		l := ComputeLayout(BuildIndex(members(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), nil, nil), small)
		require.Len(t, l.Nodes, 10)
		for _, n := range l.Nodes {
			assert.True(t, n.X > 0 && n.X < small.Width, "x=%v", n.X)
			assert.True(t, n.Y > 0 && n.Y < small.Height, "y=%v", n.Y)
		}
		assert.InDelta(t, 30, l.Nodes[0].X, 1e-9)
		assert.InDelta(t, 22.5, l.Nodes[0].Y, 1e-9)
		assert.InDelta(t, 90, l.Nodes[3].X, 1e-9)
		assert.InDelta(t, 67.5, l.Nodes[8].Y, 1e-9)
	})

	t.Run("edges", func(t *testing.T) {
		ix := BuildIndex(members(1, 2, 3),
			[]domain.Marriage{{ID: 5, Spouse1ID: 1, Spouse2ID: 2}},
			[]domain.ParentChild{edge(6, 1, 3)},
		)
		l := ComputeLayout(ix, c)
		assert.Equal(t, []domain.Edge{
			{From: 1, To: 2, Kind: domain.EdgeMarriage, RecordID: 5},
			{From: 1, To: 3, Kind: domain.EdgeParentChild, RecordID: 6},
		}, l.Edges)
	})

	t.Run("deterministic", func(t *testing.T) {
		ix := BuildIndex(members(3, 1, 4, 1, 5, 9, 2, 6), nil, []domain.ParentChild{edge(1, 3, 1)})
		assert.Equal(t, ComputeLayout(ix, c), ComputeLayout(ix, c))
	})
}

func TestGridSize(t *testing.T) {
	tests := []struct{ n, cols, rows int }{
		{0, 0, 0}, {7, 3, 3}, {9, 3, 3}, {10, 4, 3}, {17, 5, 4},
	}
	for _, tt := range tests {
		cols, rows := GridSize(tt.n)
		assert.Equal(t, tt.cols, cols, "cols n=%d", tt.n)
		assert.Equal(t, tt.rows, rows, "rows n=%d", tt.n)
	}
}

func TestResolveMember(t *testing.T) {
	ms := members(1, 2, 3, 4, 5)
	mar := []domain.Marriage{{ID: 10, Spouse1ID: 1, Spouse2ID: 2}}
	pc := []domain.ParentChild{edge(20, 1, 3), edge(21, 2, 3), edge(22, 3, 4), edge(23, 3, 77)}
	ix := BuildIndex(ms, mar, pc)

	t.Run("not_found", func(t *testing.T) {
		got, err := ResolveMember(ix, 999)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Nil(t, got)
	})

	t.Run("isolated_member", func(t *testing.T) {
		got, err := ResolveMember(ix, 5)
		require.NoError(t, err)
		assert.NotNil(t, got.Parents)
		assert.Empty(t, got.Parents)
		assert.Empty(t, got.Children)
		assert.Empty(t, got.Spouses)
	})

	t.Run("spouse_resolves_other_party", func(t *testing.T) {
		got, err := ResolveMember(ix, 2)
		require.NoError(t, err)
		require.Len(t, got.Spouses, 1)
		assert.Equal(t, int32(1), got.Spouses[0].Spouse.ID)
		assert.Equal(t, int32(10), got.Spouses[0].Marriage.ID)
	})

	t.Run("dangling_child_skipped", func(t *testing.T) {
		got, err := ResolveMember(ix, 3)
		require.NoError(t, err)
		assert.Len(t, got.Parents, 2)
		require.Len(t, got.Children, 1)
		assert.Equal(t, int32(4), got.Children[0].ID)
	})
}

// Resolving every member must reproduce exactly the relationships held in
// the raw marriage and edge lists.
func TestResolveMember_RoundTrip(t *testing.T) {
	ms := members(1, 2, 3, 4, 5, 6, 7)
	mar := []domain.Marriage{
		{ID: 1, Spouse1ID: 1, Spouse2ID: 2},
		{ID: 2, Spouse1ID: 3, Spouse2ID: 4},
		{ID: 3, Spouse1ID: 1, Spouse2ID: 6, DivorceDate: day(2001, 1, 1)},
	}
	pc := []domain.ParentChild{
		edge(1, 1, 3), edge(2, 2, 3), edge(3, 3, 5), edge(4, 4, 5), edge(5, 6, 7), edge(6, 1, 7),
	}
	ix := BuildIndex(ms, mar, pc)

	type pair struct{ a, b int32 }
	gotMar := map[pair]int{}
	gotPC := map[pair]int{}
	for _, m := range ms {
		rel, err := ResolveMember(ix, m.ID)
		require.NoError(t, err)
		for _, p := range rel.Parents {
			gotPC[pair{p.ID, m.ID}]++
		}
		for _, s := range rel.Spouses {
			gotMar[pair{s.Marriage.ID, m.ID}]++
			assert.Equal(t, s.Spouse.ID, s.Marriage.Other(m.ID))
		}
		for _, c := range rel.Children {
			assert.Equal(t, 1, countEdges(pc, m.ID, c.ID))
		}
	}

	for _, e := range pc {
		assert.Equal(t, 1, gotPC[pair{e.ParentID, e.ChildID}], "edge %d", e.ID)
	}
	assert.Len(t, gotPC, len(pc))
	for _, m := range mar {
		assert.Equal(t, 1, gotMar[pair{m.ID, m.Spouse1ID}], "marriage %d spouse1", m.ID)
		assert.Equal(t, 1, gotMar[pair{m.ID, m.Spouse2ID}], "marriage %d spouse2", m.ID)
	}
	assert.Len(t, gotMar, 2*len(mar))
}

func countEdges(pc []domain.ParentChild, parent, child int32) int {
	n := 0
	for _, e := range pc {
		if e.ParentID == parent && e.ChildID == child {
			n++
		}
	}
	return n
}
