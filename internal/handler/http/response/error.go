package response

import (
	"errors"
	"net/http"

	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/domain/leave"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/barangay"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/civilstatus"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/jobtitle"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/province"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/religion"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrEducationNotFound),
		errors.Is(err, employee.ErrTrainingNotFound),
		errors.Is(err, employee.ErrExperienceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeInactive),
		errors.Is(err, employee.ErrNothingToUpdate):
		BadRequest(w, err.Error(), nil)

	// Leave request lifecycle errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound),
		errors.Is(err, leave.ErrLeaveTypeNotFound),
		errors.Is(err, leave.ErrPolicyNotFound),
		errors.Is(err, leave.ErrBalanceNotFound),
		errors.Is(err, leave.ErrHolidayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrRequestNotPending),
		errors.Is(err, leave.ErrOverlappingRequest),
		errors.Is(err, leave.ErrLeaveTypeNameExists),
		errors.Is(err, leave.ErrHolidayDateExists):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrStartBeforeToday),
		errors.Is(err, leave.ErrHolidayOnlyPeriod),
		errors.Is(err, leave.ErrHalfDayDateMismatch),
		errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrNotEligible),
		errors.Is(err, leave.ErrLeaveTypeInactive),
		errors.Is(err, leave.ErrBalanceClosed),
		errors.Is(err, leave.ErrNothingToUpdate):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, province.ErrProvinceNotFound),
		errors.Is(err, barangay.ErrBarangayNotFound),
		errors.Is(err, religion.ErrReligionNotFound),
		errors.Is(err, civilstatus.ErrCivilStatusNotFound),
		errors.Is(err, jobtitle.ErrJobTitleNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, province.ErrProvinceNameExists),
		errors.Is(err, jobtitle.ErrJobTitleNameExists):
		Conflict(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
