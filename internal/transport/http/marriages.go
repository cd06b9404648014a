package http

import (
	"encoding/json"
	"net/http"

	"famtree/internal/domain"
	"famtree/internal/dto"
	"famtree/internal/pkg/log"
)

func (h *Handler) ListMarriages(w http.ResponseWriter, r *http.Request) {
	rows, err := h.UC.ListMarriages(r.Context())
	if err != nil {
		writeUCErr(w, r, "list_marriages", err, nil)
		return
	}
	log.Info.Printf("list_marriages ok count=%d", len(rows))
	writeJSON(w, StatusOK, dto.NewMarriageList(rows))
}

func (h *Handler) CreateMarriage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMarriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("create_marriage decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("create_marriage validate err=%v body=%+v", err, req)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, validationFields(err))
		return
	}
	married, err := parseDate(req.MarriageDate)
	if err != nil {
		badDate(w, "create_marriage", "marriage_date", err)
		return
	}
	divorced, err := parseDate(req.DivorceDate)
	if err != nil {
		badDate(w, "create_marriage", "divorce_date", err)
		return
	}

	m, err := h.UC.CreateMarriage(r.Context(), domain.Marriage{
		Spouse1ID:    req.Spouse1ID,
		Spouse2ID:    req.Spouse2ID,
		MarriageDate: married,
		DivorceDate:  divorced,
	})
	if err != nil {
		writeUCErr(w, r, "create_marriage", err, map[string]string{"spouse2_id": "already married"})
		return
	}
	log.Info.Printf("create_marriage ok id=%d spouses=%d,%d", m.ID, m.Spouse1ID, m.Spouse2ID)
	writeJSON(w, StatusCreated, dto.NewMarriageResponse(*m))
}

func (h *Handler) UpdateMarriage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("update_marriage invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	var req dto.UpdateMarriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("update_marriage decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	var (
		p   domain.MarriagePatch
		err error
	)
	if p.MarriageDate, err = dateField(req.MarriageDate); err != nil {
		badDate(w, "update_marriage", "marriage_date", err)
		return
	}
	if p.DivorceDate, err = dateField(req.DivorceDate); err != nil {
		badDate(w, "update_marriage", "divorce_date", err)
		return
	}

	m, err := h.UC.UpdateMarriage(r.Context(), id, p)
	if err != nil {
		writeUCErr(w, r, "update_marriage", err, nil)
		return
	}
	log.Info.Printf("update_marriage ok id=%d divorced=%t", id, m.Divorced())
	writeJSON(w, StatusOK, dto.NewMarriageResponse(*m))
}

func (h *Handler) DeleteMarriage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("delete_marriage invalid_id id=%q", r.URL.Path)
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	if err := h.UC.DeleteMarriage(r.Context(), id); err != nil {
		writeUCErr(w, r, "delete_marriage", err, nil)
		return
	}
	log.Info.Printf("delete_marriage ok id=%d", id)
	writeOK(w)
}

func (h *Handler) ListParentChild(w http.ResponseWriter, r *http.Request) {
	rows, err := h.UC.ListParentChild(r.Context())
	if err != nil {
		writeUCErr(w, r, "list_parent_child", err, nil)
		return
	}
	log.Info.Printf("list_parent_child ok count=%d", len(rows))
	writeJSON(w, StatusOK, dto.NewParentChildList(rows))
}

func (h *Handler) CreateParentChild(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateParentChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("create_parent_child decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("create_parent_child validate err=%v body=%+v", err, req)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, validationFields(err))
		return
	}
	pc, err := h.UC.CreateParentChild(r.Context(), domain.ParentChild{ParentID: req.ParentID, ChildID: req.ChildID})
	if err != nil {
		writeUCErr(w, r, "create_parent_child", err, map[string]string{"child_id": "already linked"})
		return
	}
	log.Info.Printf("create_parent_child ok id=%d parent=%d child=%d", pc.ID, pc.ParentID, pc.ChildID)
	writeJSON(w, StatusCreated, dto.NewParentChildResponse(*pc))
}

func (h *Handler) DeleteParentChild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("delete_parent_child invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	if err := h.UC.DeleteParentChild(r.Context(), id); err != nil {
		writeUCErr(w, r, "delete_parent_child", err, nil)
		return
	}
	log.Info.Printf("delete_parent_child ok id=%d", id)
	writeOK(w)
}
