package http

import (
	"net/http"
	"strconv"

	"famtree/internal/domain"
	"famtree/internal/dto"
	"famtree/internal/pkg/log"
)

// Network lays out the whole family. width and height default to the
// configured canvas.
func (h *Handler) Network(w http.ResponseWriter, r *http.Request) {
	c := h.Canvas
	q := r.URL.Query()
	for _, p := range []struct {
		key string
		dst *float64
	}{{"width", &c.Width}, {"height", &c.Height}} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			log.Error.Printf("network bad_%s value=%q", p.key, raw)
			writeErr(w, StatusUnprocessableEntity, MsgInvalidCanvas, map[string]string{p.key: "positive number"})
			return
		}
		*p.dst = v
	}

	l, err := h.UC.Network(r.Context(), c)
	if err != nil {
		writeUCErr(w, r, "network", err, nil)
		return
	}
	if l.Nodes == nil {
		l.Nodes = []domain.Node{}
	}
	if l.Edges == nil {
		l.Edges = []domain.Edge{}
	}
	log.Info.Printf("network ok nodes=%d edges=%d", len(l.Nodes), len(l.Edges))
	writeJSON(w, StatusOK, l)
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.UC.Statistics(r.Context())
	if err != nil {
		writeUCErr(w, r, "statistics", err, nil)
		return
	}
	log.Info.Printf("statistics ok members=%d generations=%d", st.MemberCount, st.Generations)
	writeJSON(w, StatusOK, dto.NewStatisticsResponse(*st))
}
