package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"famtree/internal/middleware"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	r.HandleFunc("/healthz", Healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/members", h.ListMembers).Methods(http.MethodGet)
	r.HandleFunc("/members", h.CreateMember).Methods(http.MethodPost)
	r.HandleFunc("/members/{id}", h.GetMember).Methods(http.MethodGet)
	r.HandleFunc("/members/{id}", h.UpdateMember).Methods(http.MethodPatch)
	r.HandleFunc("/members/{id}/details", h.MemberDetails).Methods(http.MethodGet)

	r.HandleFunc("/marriages", h.ListMarriages).Methods(http.MethodGet)
	r.HandleFunc("/marriages", h.CreateMarriage).Methods(http.MethodPost)
	r.HandleFunc("/marriages/{id}", h.UpdateMarriage).Methods(http.MethodPatch)
	r.HandleFunc("/marriages/{id}", h.DeleteMarriage).Methods(http.MethodDelete)

	r.HandleFunc("/parent-child", h.ListParentChild).Methods(http.MethodGet)
	r.HandleFunc("/parent-child", h.CreateParentChild).Methods(http.MethodPost)
	r.HandleFunc("/parent-child/{id}", h.DeleteParentChild).Methods(http.MethodDelete)

	r.HandleFunc("/network", h.Network).Methods(http.MethodGet)
	r.HandleFunc("/statistics", h.Statistics).Methods(http.MethodGet)

	// CORS wraps the router so preflight requests never reach route matching.
	return middleware.RequestID(middleware.CORS(allowOrigins)(r))
}
