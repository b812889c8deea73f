package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/employee"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/calendar"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

// Service manages 201-file records: the employee master plus education,
// training and work experience sub-records.
type Service struct {
	employees   employee.EmployeeRepository
	educations  employee.EducationRepository
	trainings   employee.TrainingRepository
	experiences employee.WorkExperienceRepository
	audits      audit.Repository
	tx          database.Transactor
	logger      *slog.Logger
}

func NewService(
	employees employee.EmployeeRepository,
	educations employee.EducationRepository,
	trainings employee.TrainingRepository,
	experiences employee.WorkExperienceRepository,
	audits audit.Repository,
	tx database.Transactor,
	logger *slog.Logger,
) *Service {
	return &Service{
		employees:   employees,
		educations:  educations,
		trainings:   trainings,
		experiences: experiences,
		audits:      audits,
		tx:          tx,
		logger:      logger,
	}
}

func (s *Service) record(ctx context.Context, action, entityType, entityID, successMsg string, err error) {
	entry := audit.Outcome(ctx, action, entityType, entityID, successMsg, err)
	if recErr := s.audits.Record(ctx, entry); recErr != nil {
		s.logger.ErrorContext(ctx, "failed to record activity log",
			"action", action, "entity_id", entityID, "error", recErr)
	}
}

// activeEmployee loads an employee and rejects soft-deleted records.
func (s *Service) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

func (s *Service) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	const action = "employee.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "employee", "", "", err)
		return employee.Employee{}, err
	}

	var created employee.Employee
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if _, err := s.employees.GetByCode(ctx, req.EmployeeCode); err == nil {
			return employee.ErrEmployeeCodeExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}

		var birthDate *calendar.Date
		if req.BirthDate != nil {
			d, err := calendar.ParseDate(*req.BirthDate)
			if err != nil {
				return err
			}
			birthDate = &d
		}

		var err error
		created, err = s.employees.Create(ctx, employee.Employee{
			EmployeeCode:     req.EmployeeCode,
			FirstName:        req.FirstName,
			MiddleName:       req.MiddleName,
			LastName:         req.LastName,
			Suffix:           req.Suffix,
			Gender:           employee.Gender(req.Gender),
			BirthDate:        birthDate,
			CivilStatusID:    req.CivilStatusID,
			ReligionID:       req.ReligionID,
			ProvinceID:       req.ProvinceID,
			BarangayID:       req.BarangayID,
			AddressLine:      req.AddressLine,
			PhoneNumber:      req.PhoneNumber,
			Email:            req.Email,
			JobTitleID:       req.JobTitleID,
			HireDate:         req.HireDateValue(),
			EmploymentStatus: employee.EmploymentStatus(req.EmploymentStatus),
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee", created.ID,
			"employee "+created.EmployeeCode+" created", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee", "", "", err)
		return employee.Employee{}, err
	}
	return created, nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) GetEmployeeByCode(ctx context.Context, code string) (employee.Employee, error) {
	return s.employees.GetByCode(ctx, code)
}

func (s *Service) ListEmployees(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return s.employees.List(ctx, filter)
}

func (s *Service) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	const action = "employee.update"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "employee", req.ID, "", err)
		return err
	}
	if req.IsEmpty() {
		err := employee.ErrNothingToUpdate
		s.record(ctx, action, "employee", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if _, err := s.activeEmployee(ctx, req.ID); err != nil {
			return err
		}
		if err := s.employees.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee", req.ID,
			"employee record updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee", req.ID, "", err)
	}
	return err
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	const action = "employee.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.employees.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee", id,
			"employee deactivated", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee", id, "", err)
	}
	return err
}

func (s *Service) AddEducation(ctx context.Context, req employee.CreateEducationRequest) (employee.EducationRecord, error) {
	const action = "employee.education.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "employee_education", "", "", err)
		return employee.EducationRecord{}, err
	}

	var created employee.EducationRecord
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if _, err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		var err error
		created, err = s.educations.Create(ctx, employee.EducationRecord{
			EmployeeID:    req.EmployeeID,
			School:        req.School,
			Level:         req.Level,
			Course:        req.Course,
			YearGraduated: req.YearGraduated,
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_education", created.ID,
			"education record added", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_education", "", "", err)
		return employee.EducationRecord{}, err
	}
	return created, nil
}

func (s *Service) ListEducation(ctx context.Context, employeeID string) ([]employee.EducationRecord, error) {
	return s.educations.ListByEmployee(ctx, employeeID)
}

func (s *Service) UpdateEducation(ctx context.Context, req employee.UpdateEducationRequest) error {
	const action = "employee.education.update"

	if req.IsEmpty() {
		err := employee.ErrNothingToUpdate
		s.record(ctx, action, "employee_education", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.educations.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_education", req.ID,
			"education record updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_education", req.ID, "", err)
	}
	return err
}

func (s *Service) DeleteEducation(ctx context.Context, id string) error {
	const action = "employee.education.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.educations.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_education", id,
			"education record removed", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_education", id, "", err)
	}
	return err
}

func (s *Service) AddTraining(ctx context.Context, req employee.CreateTrainingRequest) (employee.TrainingCertificate, error) {
	const action = "employee.training.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "employee_training", "", "", err)
		return employee.TrainingCertificate{}, err
	}

	var created employee.TrainingCertificate
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if _, err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		from := calendar.MustParse(req.DateFrom)
		to := calendar.MustParse(req.DateTo)

		var err error
		created, err = s.trainings.Create(ctx, employee.TrainingCertificate{
			EmployeeID: req.EmployeeID,
			Title:      req.Title,
			Provider:   req.Provider,
			DateFrom:   from,
			DateTo:     to,
			Hours:      req.Hours,
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_training", created.ID,
			"training record added", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_training", "", "", err)
		return employee.TrainingCertificate{}, err
	}
	return created, nil
}

func (s *Service) ListTraining(ctx context.Context, employeeID string) ([]employee.TrainingCertificate, error) {
	return s.trainings.ListByEmployee(ctx, employeeID)
}

func (s *Service) UpdateTraining(ctx context.Context, req employee.UpdateTrainingRequest) error {
	const action = "employee.training.update"

	if req.IsEmpty() {
		err := employee.ErrNothingToUpdate
		s.record(ctx, action, "employee_training", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.trainings.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_training", req.ID,
			"training record updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_training", req.ID, "", err)
	}
	return err
}

func (s *Service) DeleteTraining(ctx context.Context, id string) error {
	const action = "employee.training.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.trainings.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_training", id,
			"training record removed", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_training", id, "", err)
	}
	return err
}

func (s *Service) AddWorkExperience(ctx context.Context, req employee.CreateWorkExperienceRequest) (employee.WorkExperience, error) {
	const action = "employee.experience.create"

	if err := req.Validate(); err != nil {
		s.record(ctx, action, "employee_work_experience", "", "", err)
		return employee.WorkExperience{}, err
	}

	var created employee.WorkExperience
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if _, err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}

		var dateTo *calendar.Date
		if req.DateTo != nil {
			d := calendar.MustParse(*req.DateTo)
			dateTo = &d
		}
		var salary *decimal.Decimal
		if req.Salary != nil {
			amount, err := decimal.NewFromString(*req.Salary)
			if err != nil {
				return err
			}
			salary = &amount
		}

		var err error
		created, err = s.experiences.Create(ctx, employee.WorkExperience{
			EmployeeID: req.EmployeeID,
			Company:    req.Company,
			Position:   req.Position,
			DateFrom:   calendar.MustParse(req.DateFrom),
			DateTo:     dateTo,
			Salary:     salary,
		})
		if err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_work_experience", created.ID,
			"work experience added", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_work_experience", "", "", err)
		return employee.WorkExperience{}, err
	}
	return created, nil
}

func (s *Service) ListWorkExperience(ctx context.Context, employeeID string) ([]employee.WorkExperience, error) {
	return s.experiences.ListByEmployee(ctx, employeeID)
}

func (s *Service) UpdateWorkExperience(ctx context.Context, req employee.UpdateWorkExperienceRequest) error {
	const action = "employee.experience.update"

	if req.IsEmpty() {
		err := employee.ErrNothingToUpdate
		s.record(ctx, action, "employee_work_experience", req.ID, "", err)
		return err
	}

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.experiences.Update(ctx, req); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_work_experience", req.ID,
			"work experience updated", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_work_experience", req.ID, "", err)
	}
	return err
}

func (s *Service) DeleteWorkExperience(ctx context.Context, id string) error {
	const action = "employee.experience.delete"

	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		if err := s.experiences.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.audits.Record(ctx, audit.Outcome(ctx, action, "employee_work_experience", id,
			"work experience removed", nil))
	})
	if err != nil {
		s.record(ctx, action, "employee_work_experience", id, "", err)
	}
	return err
}
