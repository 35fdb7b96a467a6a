package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/service"
	"booking-admin-console/internal/utils"
)

type AdminCodeHandler struct {
	adminCodeSvc service.AdminCodeService
}

func NewAdminCodeHandler(adminCodeSvc service.AdminCodeService) *AdminCodeHandler {
	return &AdminCodeHandler{adminCodeSvc: adminCodeSvc}
}

func (h *AdminCodeHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := domain.AdminCodeRequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.adminCodeSvc.ListRequests(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.AdminCodeRequest{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": reqs})
}

func (h *AdminCodeHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.adminCodeSvc.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *AdminCodeHandler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := h.adminCodeSvc.GetRequest(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	outcome, err := h.adminCodeSvc.Approve(ctx, req, AdminFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

type rejectBody struct {
	Reason string `json:"reason"`
}

func (h *AdminCodeHandler) Reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var body rejectBody
	// An empty body is a reject without a reason.
	if err := decodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, err)
		return
	}

	req, err := h.adminCodeSvc.GetRequest(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	outcome, err := h.adminCodeSvc.Reject(ctx, req, AdminFromContext(ctx), body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

type validateCodeBody struct {
	Code string `json:"code"`
}

func (h *AdminCodeHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	var body validateCodeBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": body.Code, "valid": utils.IsValidAdminCode(body.Code)})
}

type normalizePhoneBody struct {
	Phone string `json:"phone"`
}

func (h *AdminCodeHandler) NormalizePhone(w http.ResponseWriter, r *http.Request) {
	var body normalizePhoneBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"normalized":   utils.NormalizePhone(body.Phone),
		"valid_mobile": utils.IsValidMobile(body.Phone),
	})
}
