package employee

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode     string  `json:"employee_code"`
	FirstName        string  `json:"first_name"`
	MiddleName       *string `json:"middle_name,omitempty"`
	LastName         string  `json:"last_name"`
	Suffix           *string `json:"suffix,omitempty"`
	Gender           string  `json:"gender"`
	BirthDate        *string `json:"birth_date,omitempty"`
	CivilStatusID    *string `json:"civil_status_id,omitempty"`
	ReligionID       *string `json:"religion_id,omitempty"`
	ProvinceID       *string `json:"province_id,omitempty"`
	BarangayID       *string `json:"barangay_id,omitempty"`
	AddressLine      *string `json:"address_line,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Email            *string `json:"email,omitempty"`
	JobTitleID       *string `json:"job_title_id,omitempty"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match YYYY-NNNN",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid YYYY-MM-DD date",
		})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if !validator.IsInSlice(r.EmploymentStatus, []string{
		string(EmploymentStatusProbationary),
		string(EmploymentStatusRegular),
		string(EmploymentStatusContractual),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be probationary, regular or contractual",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FirstName        *string `json:"first_name,omitempty"`
	MiddleName       *string `json:"middle_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Suffix           *string `json:"suffix,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	CivilStatusID    *string `json:"civil_status_id,omitempty"`
	ReligionID       *string `json:"religion_id,omitempty"`
	ProvinceID       *string `json:"province_id,omitempty"`
	BarangayID       *string `json:"barangay_id,omitempty"`
	AddressLine      *string `json:"address_line,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Email            *string `json:"email,omitempty"`
	JobTitleID       *string `json:"job_title_id,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Gender != nil && *r.Gender != string(Male) && *r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, []string{
		string(EmploymentStatusProbationary),
		string(EmploymentStatusRegular),
		string(EmploymentStatusContractual),
		string(EmploymentStatusResigned),
		string(EmploymentStatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "invalid employment_status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsEmpty reports whether no updatable field was supplied.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.FirstName == nil && r.MiddleName == nil && r.LastName == nil &&
		r.Suffix == nil && r.Gender == nil && r.BirthDate == nil &&
		r.CivilStatusID == nil && r.ReligionID == nil && r.ProvinceID == nil &&
		r.BarangayID == nil && r.AddressLine == nil && r.PhoneNumber == nil &&
		r.Email == nil && r.JobTitleID == nil && r.EmploymentStatus == nil
}

type ListEmployeesFilter struct {
	Name             *string
	EmploymentStatus *string
	IncludeInactive  bool
	Page             int
	Limit            int
}

type CreateEducationRequest struct {
	EmployeeID    string  `json:"employee_id"`
	School        string  `json:"school"`
	Level         string  `json:"level"`
	Course        *string `json:"course,omitempty"`
	YearGraduated *int    `json:"year_graduated,omitempty"`
}

func (r *CreateEducationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.School) {
		errs = append(errs, validator.ValidationError{Field: "school", Message: "school is required"})
	}
	if validator.IsEmpty(r.Level) {
		errs = append(errs, validator.ValidationError{Field: "level", Message: "level is required"})
	}
	if r.YearGraduated != nil && (*r.YearGraduated < 1900 || *r.YearGraduated > 2100) {
		errs = append(errs, validator.ValidationError{Field: "year_graduated", Message: "year_graduated is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEducationRequest struct {
	ID            string  `json:"-"`
	School        *string `json:"school,omitempty"`
	Level         *string `json:"level,omitempty"`
	Course        *string `json:"course,omitempty"`
	YearGraduated *int    `json:"year_graduated,omitempty"`
}

func (r *UpdateEducationRequest) IsEmpty() bool {
	return r.School == nil && r.Level == nil && r.Course == nil && r.YearGraduated == nil
}

type CreateTrainingRequest struct {
	EmployeeID string  `json:"employee_id"`
	Title      string  `json:"title"`
	Provider   *string `json:"provider,omitempty"`
	DateFrom   string  `json:"date_from"`
	DateTo     string  `json:"date_to"`
	Hours      *int    `json:"hours,omitempty"`
}

func (r *CreateTrainingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}

	from, okFrom := validator.IsValidDate(r.DateFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from must be a valid YYYY-MM-DD date"})
	}
	to, okTo := validator.IsValidDate(r.DateTo)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must be a valid YYYY-MM-DD date"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must not precede date_from"})
	}
	if r.Hours != nil && *r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTrainingRequest struct {
	ID       string  `json:"-"`
	Title    *string `json:"title,omitempty"`
	Provider *string `json:"provider,omitempty"`
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
	Hours    *int    `json:"hours,omitempty"`
}

func (r *UpdateTrainingRequest) IsEmpty() bool {
	return r.Title == nil && r.Provider == nil && r.DateFrom == nil &&
		r.DateTo == nil && r.Hours == nil
}

type CreateWorkExperienceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Company    string  `json:"company"`
	Position   string  `json:"position"`
	DateFrom   string  `json:"date_from"`
	DateTo     *string `json:"date_to,omitempty"`
	Salary     *string `json:"salary,omitempty"`
}

func (r *CreateWorkExperienceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "company is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if _, ok := validator.IsValidDate(r.DateFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from must be a valid YYYY-MM-DD date"})
	}
	if r.DateTo != nil {
		if _, ok := validator.IsValidDate(*r.DateTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must be a valid YYYY-MM-DD date"})
		}
	}
	if r.Salary != nil {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkExperienceRequest struct {
	ID       string  `json:"-"`
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
	Salary   *string `json:"salary,omitempty"`
}

func (r *UpdateWorkExperienceRequest) IsEmpty() bool {
	return r.Company == nil && r.Position == nil && r.DateFrom == nil &&
		r.DateTo == nil && r.Salary == nil
}

// HireDateValue parses the already-validated hire date.
func (r *CreateEmployeeRequest) HireDateValue() calendar.Date {
	d, _ := calendar.ParseDate(r.HireDate)
	return d
}

type EmployeeResponse struct {
	ID               string         `json:"id"`
	EmployeeCode     string         `json:"employee_code"`
	FullName         string         `json:"full_name"`
	FirstName        string         `json:"first_name"`
	MiddleName       *string        `json:"middle_name,omitempty"`
	LastName         string         `json:"last_name"`
	Suffix           *string        `json:"suffix,omitempty"`
	Gender           string         `json:"gender"`
	BirthDate        *calendar.Date `json:"birth_date,omitempty"`
	CivilStatusID    *string        `json:"civil_status_id,omitempty"`
	ReligionID       *string        `json:"religion_id,omitempty"`
	ProvinceID       *string        `json:"province_id,omitempty"`
	BarangayID       *string        `json:"barangay_id,omitempty"`
	AddressLine      *string        `json:"address_line,omitempty"`
	PhoneNumber      *string        `json:"phone_number,omitempty"`
	Email            *string        `json:"email,omitempty"`
	JobTitleID       *string        `json:"job_title_id,omitempty"`
	HireDate         calendar.Date  `json:"hire_date"`
	EmploymentStatus string         `json:"employment_status"`
	IsActive         bool           `json:"is_active"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName(),
		FirstName:        e.FirstName,
		MiddleName:       e.MiddleName,
		LastName:         e.LastName,
		Suffix:           e.Suffix,
		Gender:           string(e.Gender),
		BirthDate:        e.BirthDate,
		CivilStatusID:    e.CivilStatusID,
		ReligionID:       e.ReligionID,
		ProvinceID:       e.ProvinceID,
		BarangayID:       e.BarangayID,
		AddressLine:      e.AddressLine,
		PhoneNumber:      e.PhoneNumber,
		Email:            e.Email,
		JobTitleID:       e.JobTitleID,
		HireDate:         e.HireDate,
		EmploymentStatus: string(e.EmploymentStatus),
		IsActive:         e.IsActive,
	}
}

type EducationResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	School        string  `json:"school"`
	Level         string  `json:"level"`
	Course        *string `json:"course,omitempty"`
	YearGraduated *int    `json:"year_graduated,omitempty"`
}

func ToEducationResponse(rec EducationRecord) EducationResponse {
	return EducationResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		School:        rec.School,
		Level:         rec.Level,
		Course:        rec.Course,
		YearGraduated: rec.YearGraduated,
	}
}

type TrainingResponse struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employee_id"`
	Title      string        `json:"title"`
	Provider   *string       `json:"provider,omitempty"`
	DateFrom   calendar.Date `json:"date_from"`
	DateTo     calendar.Date `json:"date_to"`
	Hours      *int          `json:"hours,omitempty"`
}

func ToTrainingResponse(cert TrainingCertificate) TrainingResponse {
	return TrainingResponse{
		ID:         cert.ID,
		EmployeeID: cert.EmployeeID,
		Title:      cert.Title,
		Provider:   cert.Provider,
		DateFrom:   cert.DateFrom,
		DateTo:     cert.DateTo,
		Hours:      cert.Hours,
	}
}

type WorkExperienceResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Company    string         `json:"company"`
	Position   string         `json:"position"`
	DateFrom   calendar.Date  `json:"date_from"`
	DateTo     *calendar.Date `json:"date_to,omitempty"`
	Salary     *string        `json:"salary,omitempty"`
}

func ToWorkExperienceResponse(exp WorkExperience) WorkExperienceResponse {
	resp := WorkExperienceResponse{
		ID:         exp.ID,
		EmployeeID: exp.EmployeeID,
		Company:    exp.Company,
		Position:   exp.Position,
		DateFrom:   exp.DateFrom,
		DateTo:     exp.DateTo,
	}
	if exp.Salary != nil {
		s := exp.Salary.String()
		resp.Salary = &s
	}
	return resp
}
