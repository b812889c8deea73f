package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/handler/http/response"
	employeeService "github.com/bayanihr/hr201-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByCode(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddEducation(w http.ResponseWriter, r *http.Request)
	ListEducation(w http.ResponseWriter, r *http.Request)
	UpdateEducation(w http.ResponseWriter, r *http.Request)
	DeleteEducation(w http.ResponseWriter, r *http.Request)

	AddTraining(w http.ResponseWriter, r *http.Request)
	ListTraining(w http.ResponseWriter, r *http.Request)
	UpdateTraining(w http.ResponseWriter, r *http.Request)
	DeleteTraining(w http.ResponseWriter, r *http.Request)

	AddWorkExperience(w http.ResponseWriter, r *http.Request)
	ListWorkExperience(w http.ResponseWriter, r *http.Request)
	UpdateWorkExperience(w http.ResponseWriter, r *http.Request)
	DeleteWorkExperience(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(svc *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: svc}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.ToEmployeeResponse(emp))
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// GetByCode implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	emp, err := h.employeeService.GetEmployeeByCode(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := employee.ListEmployeesFilter{
		IncludeInactive: q.Get("include_inactive") == "true",
		Page:            parseIntQuery(q.Get("page"), 1),
		Limit:           parseIntQuery(q.Get("limit"), 20),
	}
	if v := q.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := q.Get("employment_status"); v != "" {
		filter.EmploymentStatus = &v
	}

	employees, total, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.ToEmployeeResponse(emp))
	}
	response.SuccessWithMeta(w, out, paginationMeta(filter.Page, filter.Limit, total))
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.employeeService.UpdateEmployee(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// AddEducation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AddEducation(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddEducation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	rec, err := h.employeeService.AddEducation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Education record added successfully", employee.ToEducationResponse(rec))
}

// ListEducation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListEducation(w http.ResponseWriter, r *http.Request) {
	records, err := h.employeeService.ListEducation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employee.EducationResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, employee.ToEducationResponse(rec))
	}
	response.Success(w, out)
}

// UpdateEducation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEducation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	if err := h.employeeService.UpdateEducation(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Education record updated successfully", nil)
}

// DeleteEducation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEducation(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Education record removed successfully", nil)
}

// AddTraining implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AddTraining(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddTraining decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	cert, err := h.employeeService.AddTraining(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Training record added successfully", employee.ToTrainingResponse(cert))
}

// ListTraining implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListTraining(w http.ResponseWriter, r *http.Request) {
	certs, err := h.employeeService.ListTraining(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employee.TrainingResponse, 0, len(certs))
	for _, cert := range certs {
		out = append(out, employee.ToTrainingResponse(cert))
	}
	response.Success(w, out)
}

// UpdateTraining implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateTraining(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTraining decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	if err := h.employeeService.UpdateTraining(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training record updated successfully", nil)
}

// DeleteTraining implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteTraining(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training record removed successfully", nil)
}

// AddWorkExperience implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AddWorkExperience(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateWorkExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddWorkExperience decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	exp, err := h.employeeService.AddWorkExperience(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work experience added successfully", employee.ToWorkExperienceResponse(exp))
}

// ListWorkExperience implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListWorkExperience(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.employeeService.ListWorkExperience(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employee.WorkExperienceResponse, 0, len(experiences))
	for _, exp := range experiences {
		out = append(out, employee.ToWorkExperienceResponse(exp))
	}
	response.Success(w, out)
}

// UpdateWorkExperience implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateWorkExperience(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateWorkExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorkExperience decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	if err := h.employeeService.UpdateWorkExperience(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work experience updated successfully", nil)
}

// DeleteWorkExperience implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteWorkExperience(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteWorkExperience(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work experience removed successfully", nil)
}
