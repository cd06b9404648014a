package http

import (
	"encoding/json"
	"net/http"

	"famtree/internal/domain"
	"famtree/internal/dto"
	"famtree/internal/pkg/log"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.UC.ListMembers(r.Context())
	if err != nil {
		writeUCErr(w, r, "list_members", err, nil)
		return
	}
	log.Info.Printf("list_members ok count=%d", len(rows))
	writeJSON(w, StatusOK, dto.NewMemberList(rows))
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("get_member invalid_id id=%q", r.URL.Path)
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	m, err := h.UC.GetMember(r.Context(), id)
	if err != nil {
		writeUCErr(w, r, "get_member", err, nil)
		return
	}
	if m == nil {
		writeErr(w, StatusNotFound, MsgNotFound, nil)
		return
	}
	writeJSON(w, StatusOK, dto.NewMemberResponse(*m))
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("create_member decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("create_member validate err=%v", err)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, validationFields(err))
		return
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		badDate(w, "create_member", "birth_date", err)
		return
	}
	death, err := parseDate(req.DeathDate)
	if err != nil {
		badDate(w, "create_member", "death_date", err)
		return
	}

	m := domain.Member{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  birth,
		DeathDate:  death,
		PictureURL: req.PictureURL,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		m.Gender = &g
	}

	created, err := h.UC.CreateMember(r.Context(), m)
	if err != nil {
		writeUCErr(w, r, "create_member", err, nil)
		return
	}
	log.Info.Printf("create_member ok id=%d name=%q", created.ID, created.FirstName+" "+created.LastName)
	writeJSON(w, StatusCreated, dto.NewMemberResponse(*created))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("update_member invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	var req dto.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("update_member decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("update_member validate err=%v", err)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, validationFields(err))
		return
	}

	p := domain.MemberPatch{FirstName: req.FirstName, LastName: req.LastName}
	var err error
	if p.BirthDate, err = dateField(req.BirthDate); err != nil {
		badDate(w, "update_member", "birth_date", err)
		return
	}
	if p.DeathDate, err = dateField(req.DeathDate); err != nil {
		badDate(w, "update_member", "death_date", err)
		return
	}
	if req.Gender.Set {
		p.Gender = domain.SetNull[domain.Gender]()
		if req.Gender.Value != nil {
			g := domain.Gender(*req.Gender.Value)
			if !g.Valid() {
				writeErr(w, StatusUnprocessableEntity, MsgValidation, map[string]string{"gender": "oneof"})
				return
			}
			p.Gender = domain.SetTo(g)
		}
	}
	if req.PictureURL.Set {
		p.PictureURL = domain.Field[string]{Set: true, Value: req.PictureURL.Value}
	}

	updated, err := h.UC.UpdateMember(r.Context(), id, p)
	if err != nil {
		writeUCErr(w, r, "update_member", err, nil)
		return
	}
	log.Info.Printf("update_member ok id=%d", id)
	writeJSON(w, StatusOK, dto.NewMemberResponse(*updated))
}

func (h *Handler) MemberDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("member_details invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	rel, err := h.UC.MemberDetails(r.Context(), id)
	if err != nil {
		writeUCErr(w, r, "member_details", err, nil)
		return
	}
	log.Info.Printf("member_details ok id=%d parents=%d children=%d spouses=%d",
		id, len(rel.Parents), len(rel.Children), len(rel.Spouses))
	writeJSON(w, StatusOK, dto.NewMemberDetailsResponse(*rel))
}
