package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
)

// Employee is the 201-file master record.
type Employee struct {
	ID            string
	EmployeeCode  string
	FirstName     string
	MiddleName    *string
	LastName      string
	Suffix        *string
	Gender        Gender
	BirthDate     *calendar.Date
	CivilStatusID *string
	ReligionID    *string

	// Address
	ProvinceID  *string
	BarangayID  *string
	AddressLine *string

	PhoneNumber *string
	Email       *string

	// Employment
	JobTitleID       *string
	HireDate         calendar.Date
	EmploymentStatus EmploymentStatus

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName renders "First [Middle] Last[, Suffix]".
func (e Employee) FullName() string {
	name := e.FirstName
	if e.MiddleName != nil && *e.MiddleName != "" {
		name += " " + *e.MiddleName
	}
	name += " " + e.LastName
	if e.Suffix != nil && *e.Suffix != "" {
		name += ", " + *e.Suffix
	}
	return name
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type EmploymentStatus string

const (
	EmploymentStatusProbationary EmploymentStatus = "probationary"
	EmploymentStatusRegular      EmploymentStatus = "regular"
	EmploymentStatusContractual  EmploymentStatus = "contractual"
	EmploymentStatusResigned     EmploymentStatus = "resigned"
	EmploymentStatusTerminated   EmploymentStatus = "terminated"
)

// Employed reports whether the status still counts as on the payroll.
func (s EmploymentStatus) Employed() bool {
	return s != EmploymentStatusResigned && s != EmploymentStatusTerminated
}

// EducationRecord is one schooling entry in the 201 file.
type EducationRecord struct {
	ID            string
	EmployeeID    string
	School        string
	Level         string
	Course        *string
	YearGraduated *int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TrainingCertificate is one training/seminar entry in the 201 file.
type TrainingCertificate struct {
	ID         string
	EmployeeID string
	Title      string
	Provider   *string
	DateFrom   calendar.Date
	DateTo     calendar.Date
	Hours      *int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkExperience is one prior-employment entry in the 201 file.
type WorkExperience struct {
	ID         string
	EmployeeID string
	Company    string
	Position   string
	DateFrom   calendar.Date
	DateTo     *calendar.Date
	Salary     *decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
