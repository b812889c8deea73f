package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/master/barangay"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/civilstatus"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/jobtitle"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/province"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/religion"
	"github.com/bayanihr/hr201-backend-go/internal/handler/http/response"
	masterService "github.com/bayanihr/hr201-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateProvince(w http.ResponseWriter, r *http.Request)
	ListProvinces(w http.ResponseWriter, r *http.Request)
	UpdateProvince(w http.ResponseWriter, r *http.Request)
	DeleteProvince(w http.ResponseWriter, r *http.Request)

	CreateBarangay(w http.ResponseWriter, r *http.Request)
	ListBarangays(w http.ResponseWriter, r *http.Request)
	UpdateBarangay(w http.ResponseWriter, r *http.Request)
	DeleteBarangay(w http.ResponseWriter, r *http.Request)

	CreateReligion(w http.ResponseWriter, r *http.Request)
	ListReligions(w http.ResponseWriter, r *http.Request)
	UpdateReligion(w http.ResponseWriter, r *http.Request)
	DeleteReligion(w http.ResponseWriter, r *http.Request)

	CreateCivilStatus(w http.ResponseWriter, r *http.Request)
	ListCivilStatuses(w http.ResponseWriter, r *http.Request)
	UpdateCivilStatus(w http.ResponseWriter, r *http.Request)
	DeleteCivilStatus(w http.ResponseWriter, r *http.Request)

	CreateJobTitle(w http.ResponseWriter, r *http.Request)
	ListJobTitles(w http.ResponseWriter, r *http.Request)
	UpdateJobTitle(w http.ResponseWriter, r *http.Request)
	DeleteJobTitle(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService *masterService.Service
}

func NewMasterHandler(svc *masterService.Service) MasterHandler {
	return &MasterHandlerImpl{masterService: svc}
}

func includeInactiveParam(r *http.Request) bool {
	return r.URL.Query().Get("include_inactive") == "true"
}

// CreateProvince implements MasterHandler.
func (h *MasterHandlerImpl) CreateProvince(w http.ResponseWriter, r *http.Request) {
	var req province.CreateProvinceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProvince decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.masterService.CreateProvince(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Province created successfully", province.ToResponse(p))
}

// ListProvinces implements MasterHandler.
func (h *MasterHandlerImpl) ListProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.masterService.ListProvinces(r.Context(), includeInactiveParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]province.ProvinceResponse, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, province.ToResponse(p))
	}
	response.Success(w, out)
}

// UpdateProvince implements MasterHandler.
func (h *MasterHandlerImpl) UpdateProvince(w http.ResponseWriter, r *http.Request) {
	var req province.UpdateProvinceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProvince decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateProvince(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Province updated successfully", nil)
}

// DeleteProvince implements MasterHandler.
func (h *MasterHandlerImpl) DeleteProvince(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteProvince(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Province deleted successfully", nil)
}

// CreateBarangay implements MasterHandler.
func (h *MasterHandlerImpl) CreateBarangay(w http.ResponseWriter, r *http.Request) {
	var req barangay.CreateBarangayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBarangay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	b, err := h.masterService.CreateBarangay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Barangay created successfully", barangay.ToResponse(b))
}

// ListBarangays implements MasterHandler.
func (h *MasterHandlerImpl) ListBarangays(w http.ResponseWriter, r *http.Request) {
	provinceID := r.URL.Query().Get("province_id")

	barangays, err := h.masterService.ListBarangays(r.Context(), provinceID, includeInactiveParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]barangay.BarangayResponse, 0, len(barangays))
	for _, b := range barangays {
		out = append(out, barangay.ToResponse(b))
	}
	response.Success(w, out)
}

// UpdateBarangay implements MasterHandler.
func (h *MasterHandlerImpl) UpdateBarangay(w http.ResponseWriter, r *http.Request) {
	var req barangay.UpdateBarangayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBarangay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateBarangay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Barangay updated successfully", nil)
}

// DeleteBarangay implements MasterHandler.
func (h *MasterHandlerImpl) DeleteBarangay(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteBarangay(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Barangay deleted successfully", nil)
}

// CreateReligion implements MasterHandler.
func (h *MasterHandlerImpl) CreateReligion(w http.ResponseWriter, r *http.Request) {
	var req religion.CreateReligionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReligion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rel, err := h.masterService.CreateReligion(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Religion created successfully", religion.ToResponse(rel))
}

// ListReligions implements MasterHandler.
func (h *MasterHandlerImpl) ListReligions(w http.ResponseWriter, r *http.Request) {
	religions, err := h.masterService.ListReligions(r.Context(), includeInactiveParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]religion.ReligionResponse, 0, len(religions))
	for _, rel := range religions {
		out = append(out, religion.ToResponse(rel))
	}
	response.Success(w, out)
}

// UpdateReligion implements MasterHandler.
func (h *MasterHandlerImpl) UpdateReligion(w http.ResponseWriter, r *http.Request) {
	var req religion.UpdateReligionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateReligion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateReligion(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Religion updated successfully", nil)
}

// DeleteReligion implements MasterHandler.
func (h *MasterHandlerImpl) DeleteReligion(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteReligion(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Religion deleted successfully", nil)
}

// CreateCivilStatus implements MasterHandler.
func (h *MasterHandlerImpl) CreateCivilStatus(w http.ResponseWriter, r *http.Request) {
	var req civilstatus.CreateCivilStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCivilStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cs, err := h.masterService.CreateCivilStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Civil status created successfully", civilstatus.ToResponse(cs))
}

// ListCivilStatuses implements MasterHandler.
func (h *MasterHandlerImpl) ListCivilStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.masterService.ListCivilStatuses(r.Context(), includeInactiveParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]civilstatus.CivilStatusResponse, 0, len(statuses))
	for _, cs := range statuses {
		out = append(out, civilstatus.ToResponse(cs))
	}
	response.Success(w, out)
}

// UpdateCivilStatus implements MasterHandler.
func (h *MasterHandlerImpl) UpdateCivilStatus(w http.ResponseWriter, r *http.Request) {
	var req civilstatus.UpdateCivilStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCivilStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateCivilStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Civil status updated successfully", nil)
}

// DeleteCivilStatus implements MasterHandler.
func (h *MasterHandlerImpl) DeleteCivilStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteCivilStatus(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Civil status deleted successfully", nil)
}

// CreateJobTitle implements MasterHandler.
func (h *MasterHandlerImpl) CreateJobTitle(w http.ResponseWriter, r *http.Request) {
	var req jobtitle.CreateJobTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateJobTitle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	jt, err := h.masterService.CreateJobTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job title created successfully", jobtitle.ToResponse(jt))
}

// ListJobTitles implements MasterHandler.
func (h *MasterHandlerImpl) ListJobTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.masterService.ListJobTitles(r.Context(), includeInactiveParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]jobtitle.JobTitleResponse, 0, len(titles))
	for _, jt := range titles {
		out = append(out, jobtitle.ToResponse(jt))
	}
	response.Success(w, out)
}

// UpdateJobTitle implements MasterHandler.
func (h *MasterHandlerImpl) UpdateJobTitle(w http.ResponseWriter, r *http.Request) {
	var req jobtitle.UpdateJobTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateJobTitle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateJobTitle(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job title updated successfully", nil)
}

// DeleteJobTitle implements MasterHandler.
func (h *MasterHandlerImpl) DeleteJobTitle(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteJobTitle(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job title deleted successfully", nil)
}
