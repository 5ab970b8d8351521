// Package v1handler implements version 1 of the CRM HTTP API.
package v1handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"crm/internal/crm"
	"crm/pkg/logger"
	"crm/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps holds the dependencies the handlers need.
type Deps struct {
	// Service executes the CRM workflows.
	Service crm.Service
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/users/{id}/email", h.ChangeUserEmail)
}

// ChangeUserEmail handles POST /v1/users/{id}/email. The request body is a
// JSON object with an "email" field. A violated business rule is reported
// with 409 Conflict and the rule's text; infrastructure failures map to
// their semantic status codes.
func (h *Handler) ChangeUserEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, serrors.ErrBadRequest.Error(), "invalid user id")

		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, serrors.ErrBadRequest.Error(), "could not read request body")

		return
	}

	email, err := decodeEmailRequest(body)
	if err != nil || email == "" {
		writeError(w, http.StatusBadRequest, serrors.ErrBadRequest.Error(), "invalid payload: missing email")

		return
	}

	result, err := h.deps.Service.ChangeUserEmail(ctx, userID, email)
	if err != nil {
		h.writeServiceError(w, r, err)

		return
	}

	if result != crm.ResultOK {
		// the transaction was rolled back; surface the violated rule
		writeError(w, http.StatusConflict, serrors.ErrConflict.Error(), result)

		return
	}

	writeResult(w, http.StatusOK, result)
}

// writeServiceError maps semantic error kinds onto HTTP status codes. Unknown
// errors become opaque 500s so internals never leak to clients.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context(), "request failed", zap.Error(err))

	var serror *serrors.Error
	code := serrors.ErrInternal
	message := "internal error"

	switch {
	case errors.As(err, &serror):
		code = serror.Kind()
		message = serror.Message()
	case errors.Is(err, serrors.ErrNotFound):
		code = serrors.ErrNotFound
		message = "resource not found"
	case errors.Is(err, serrors.ErrBadRequest):
		code = serrors.ErrBadRequest
		message = "bad request"
	}

	status := http.StatusInternalServerError
	switch code {
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	case serrors.ErrBadRequest:
		status = http.StatusBadRequest
	case serrors.ErrConflict, serrors.ErrInvariant, serrors.ErrPrecondition:
		status = http.StatusConflict
	}

	writeError(w, status, code.Error(), message)
}

func decodeEmailRequest(body []byte) (string, error) {
	var email string
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key == "email" {
			v, err := d.Str()
			email = v

			return err
		}

		return d.Skip()
	}); err != nil {
		return "", err
	}

	return email, nil
}

func writeResult(w http.ResponseWriter, status int, result string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("result")
	e.Str(result)
	e.ObjEnd()

	writeJSON(w, status, e.Bytes())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.ObjStart()
	e.FieldStart("code")
	e.Str(code)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	e.ObjEnd()

	writeJSON(w, status, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
