package family

import (
	"time"

	"famtree/internal/domain"
)

// ComputeStatistics aggregates the snapshot behind ix. Ages are measured
// against now for living members.
func ComputeStatistics(ix *Index, now time.Time) domain.Statistics {
	active, divorced := MarriageCounts(ix)
	st := domain.Statistics{
		MemberCount:        len(ix.Members()),
		GenderDistribution: GenderDistribution(ix),
		ActiveMarriages:    active,
		Divorced:           divorced,
		TotalMarriages:     len(ix.Marriages()),
		ParentChildLinks:   len(ix.Edges()),
		Generations:        GenerationDepth(ix),
	}
	for _, m := range ix.Members() {
		if m.BirthDate != nil {
			st.MembersWithBirthDate++
		}
	}
	if avg, ok := AverageAge(ix, now); ok {
		st.AverageAge = &avg
	}
	return st
}

// GenderDistribution counts members per gender; members without one are
// counted under domain.GenderUnknown.
func GenderDistribution(ix *Index) map[string]int {
	out := make(map[string]int)
	for _, m := range ix.Members() {
		key := domain.GenderUnknown
		if m.Gender != nil {
			key = string(*m.Gender)
		}
		out[key]++
	}
	return out
}

// MarriageCounts partitions marriages on whether a divorce date is set.
func MarriageCounts(ix *Index) (active, divorced int) {
	for _, m := range ix.Marriages() {
		if m.Divorced() {
			divorced++
		} else {
			active++
		}
	}
	return active, divorced
}

// AverageAge is the mean of whole-year differences between birth and
// either death or now. Members without a birth date are ignored; ok is
// false when none has one.
func AverageAge(ix *Index, now time.Time) (avg float64, ok bool) {
	var sum, n int
	for _, m := range ix.Members() {
		if m.BirthDate == nil {
			continue
		}
		ref := now
		if m.DeathDate != nil {
			ref = *m.DeathDate
		}
		sum += ref.Year() - m.BirthDate.Year()
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// GenerationDepth is the longest parent→child path, counted in members,
// starting from a root (a parent that is never a child). It is 1 when there
// is no root. Cyclic input is tolerated: a member reached again while still
// on the current path adds nothing.
func GenerationDepth(ix *Index) int {
	roots := roots(ix)
	if len(roots) == 0 {
		return 1
	}
	best := 1
	for _, r := range roots {
		w := walker{ix: ix, state: make(map[int32]visit), height: make(map[int32]int)}
		if d := w.depth(r); d > best {
			best = d
		}
	}
	return best
}

// roots are the members that are a parent in some edge and a child in none.
// Parent ids missing from the snapshot never count.
func roots(ix *Index) []int32 {
	isParent := make(map[int32]bool, len(ix.Edges()))
	isChild := make(map[int32]bool, len(ix.Edges()))
	for _, e := range ix.Edges() {
		isParent[e.ParentID] = true
		isChild[e.ChildID] = true
	}
	var out []int32
	for _, m := range ix.Members() {
		if isParent[m.ID] && !isChild[m.ID] {
			out = append(out, m.ID)
		}
	}
	return out
}

type visit uint8

const (
	unvisited visit = iota
	onPath
	done
)

// walker holds the visit state of a single root's traversal.
type walker struct {
	ix     *Index
	state  map[int32]visit
	height map[int32]int
}

func (w *walker) depth(id int32) int {
	switch w.state[id] {
	case onPath:
		return 0
	case done:
		return w.height[id]
	}
	w.state[id] = onPath
	below := 0
	for _, e := range w.ix.ChildEdges(id) {
		if d := w.depth(e.ChildID); d > below {
			below = d
		}
	}
	w.state[id] = done
	w.height[id] = below + 1
	return below + 1
}
