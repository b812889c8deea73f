package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// EducationRepository - interface for employee_educations table
type EducationRepository interface {
	Create(ctx context.Context, rec EducationRecord) (EducationRecord, error)
	GetByID(ctx context.Context, id string) (EducationRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EducationRecord, error)
	Update(ctx context.Context, req UpdateEducationRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// TrainingRepository - interface for employee_trainings table
type TrainingRepository interface {
	Create(ctx context.Context, rec TrainingCertificate) (TrainingCertificate, error)
	GetByID(ctx context.Context, id string) (TrainingCertificate, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TrainingCertificate, error)
	Update(ctx context.Context, req UpdateTrainingRequest) error
	SoftDelete(ctx context.Context, id string) error
}

// WorkExperienceRepository - interface for employee_work_experiences table
type WorkExperienceRepository interface {
	Create(ctx context.Context, rec WorkExperience) (WorkExperience, error)
	GetByID(ctx context.Context, id string) (WorkExperience, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkExperience, error)
	Update(ctx context.Context, req UpdateWorkExperienceRequest) error
	SoftDelete(ctx context.Context, id string) error
}
