package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"famtree/internal/domain"
	"famtree/internal/dto"
	"famtree/internal/middleware"
	"famtree/internal/pkg/log"
)

type Handler struct {
	UC     domain.FamilyUsecase
	Val    *validator.Validate
	Canvas domain.Canvas
}

func NewHandler(uc domain.FamilyUsecase, canvas domain.Canvas) *Handler {
	return &Handler{UC: uc, Val: validator.New(), Canvas: canvas}
}

func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// parseDate returns nil for a nil or empty s.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dateField converts an optional date of a partial update.
func dateField(o dto.Optional[string]) (domain.Field[time.Time], error) {
	if !o.Set {
		return domain.Field[time.Time]{}, nil
	}
	t, err := parseDate(o.Value)
	if err != nil {
		return domain.Field[time.Time]{}, err
	}
	if t == nil {
		return domain.SetNull[time.Time](), nil
	}
	return domain.SetTo(*t), nil
}

func badDate(w http.ResponseWriter, op, field string, err error) {
	log.Error.Printf("%s bad_%s err=%v", op, field, err)
	writeErr(w, StatusUnprocessableEntity, MsgInvalidDate, map[string]string{field: "YYYY-MM-DD"})
}

// validationFields maps validator errors to json field names.
func validationFields(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[jsonName(fe.Field())] = fe.Tag()
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "Spouse1ID":
		return "spouse1_id"
	case "Spouse2ID":
		return "spouse2_id"
	case "ParentID":
		return "parent_id"
	case "ChildID":
		return "child_id"
	case "PictureURL":
		return "picture_url"
	}
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeUCErr maps usecase errors onto the status codes of the API.
func writeUCErr(w http.ResponseWriter, r *http.Request, op string, err error, conflict map[string]string) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
	case errors.Is(err, domain.ErrValidation):
		log.Info.Printf("%s rejected err=%v", op, err)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, map[string]string{"detail": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeErr(w, StatusNotFound, MsgNotFound, nil)
	case errors.Is(err, domain.ErrConflict):
		log.Info.Printf("%s conflict", op)
		writeErr(w, StatusConflict, MsgConflict, conflict)
	default:
		log.Error.Printf("%s repo_err req=%s err=%v", op, middleware.RequestIDFrom(r.Context()), err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
	}
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeOK(w)
}
