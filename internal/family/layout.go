package family

import (
	"math"

	"famtree/internal/domain"
)

const (
	// maxCircleMembers is the largest family placed on a circle; bigger
	// ones fall back to a grid.
	maxCircleMembers  = 6
	circleRadiusRatio = 0.25
	gridMargin        = 100.0
)

// ComputeLayout places every member of ix on the canvas and builds one edge
// per marriage and per parent-child record. The result depends only on the
// canvas and the snapshot order.
func ComputeLayout(ix *Index, c domain.Canvas) domain.Layout {
	members := ix.Members()
	out := domain.Layout{
		Canvas: c,
		Nodes:  make([]domain.Node, 0, len(members)),
		Edges:  make([]domain.Edge, 0, len(ix.Marriages())+len(ix.Edges())),
	}
	n := len(members)
	for i, m := range members {
		x, y := position(i, n, c)
		out.Nodes = append(out.Nodes, domain.Node{ID: m.ID, X: x, Y: y})
	}
	for _, m := range ix.Marriages() {
		out.Edges = append(out.Edges, domain.Edge{
			From: m.Spouse1ID, To: m.Spouse2ID, Kind: domain.EdgeMarriage, RecordID: m.ID,
		})
	}
	for _, e := range ix.Edges() {
		out.Edges = append(out.Edges, domain.Edge{
			From: e.ParentID, To: e.ChildID, Kind: domain.EdgeParentChild, RecordID: e.ID,
		})
	}
	return out
}

// GridSize returns the grid used for n members.
func GridSize(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

func position(i, n int, c domain.Canvas) (x, y float64) {
	cx, cy := c.Width/2, c.Height/2
	switch {
	case n == 1:
		return cx, cy
	case n <= maxCircleMembers:
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := math.Min(c.Width, c.Height) * circleRadiusRatio
		return cx + math.Cos(angle)*r, cy + math.Sin(angle)*r
	}
	cols, rows := GridSize(n)
	col, row := i%cols, i/cols
	return gridCoord(c.Width, col, cols), gridCoord(c.Height, row, rows)
}

// margin is gridMargin, shrunk on canvases too small to hold two of them so
// the grid never leaves the canvas.
func margin(extent float64) float64 {
	return math.Min(gridMargin, extent/4)
}

func gridCoord(extent float64, cell, cells int) float64 {
	return margin(extent) + float64(cell)*spacing(extent, cells)
}

func spacing(extent float64, cells int) float64 {
	if cells <= 1 {
		return 0
	}
	return (extent - 2*margin(extent)) / float64(cells-1)
}
