package master

import (
	"context"
	"log/slog"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/barangay"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/civilstatus"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/jobtitle"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/province"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/religion"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
)

// Service manages the lookup tables the 201 file references: provinces,
// barangays, religions, civil statuses and job titles.
type Service struct {
	provinces     province.ProvinceRepository
	barangays     barangay.BarangayRepository
	religions     religion.ReligionRepository
	civilStatuses civilstatus.CivilStatusRepository
	jobTitles     jobtitle.JobTitleRepository
	audits        audit.Repository
	tx            database.Transactor
	logger        *slog.Logger
}

func NewService(
	provinces province.ProvinceRepository,
	barangays barangay.BarangayRepository,
	religions religion.ReligionRepository,
	civilStatuses civilstatus.CivilStatusRepository,
	jobTitles jobtitle.JobTitleRepository,
	audits audit.Repository,
	tx database.Transactor,
	logger *slog.Logger,
) *Service {
	return &Service{
		provinces:     provinces,
		barangays:     barangays,
		religions:     religions,
		civilStatuses: civilStatuses,
		jobTitles:     jobTitles,
		audits:        audits,
		tx:            tx,
		logger:        logger,
	}
}

func (s *Service) record(ctx context.Context, action, entityType, entityID, successMsg string, err error) {
	entry := audit.Outcome(ctx, action, entityType, entityID, successMsg, err)
	if recErr := s.audits.Record(ctx, entry); recErr != nil {
		s.logger.ErrorContext(ctx, "failed to record activity log",
			"action", action, "entity_id", entityID, "error", recErr)
	}
}

// mutate wraps a master-table write in a transaction with its activity
// log entry.
func (s *Service) mutate(ctx context.Context, action, entityType string, fn func(ctx context.Context) (string, string, error)) error {
	var entityID string
	err := s.tx.InTx(ctx, action, func(ctx context.Context) error {
		id, successMsg, err := fn(ctx)
		if err != nil {
			return err
		}
		entityID = id
		return s.audits.Record(ctx, audit.Outcome(ctx, action, entityType, id, successMsg, nil))
	})
	if err != nil {
		s.record(ctx, action, entityType, entityID, "", err)
	}
	return err
}

func (s *Service) CreateProvince(ctx context.Context, req province.CreateProvinceRequest) (province.Province, error) {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.province.create", "province", "", "", err)
		return province.Province{}, err
	}

	var created province.Province
	err := s.mutate(ctx, "master.province.create", "province", func(ctx context.Context) (string, string, error) {
		var err error
		created, err = s.provinces.Create(ctx, province.Province{Name: req.Name, Region: req.Region})
		if err != nil {
			return "", "", err
		}
		return created.ID, "province " + created.Name + " created", nil
	})
	if err != nil {
		return province.Province{}, err
	}
	return created, nil
}

func (s *Service) ListProvinces(ctx context.Context, includeInactive bool) ([]province.Province, error) {
	return s.provinces.List(ctx, includeInactive)
}

func (s *Service) UpdateProvince(ctx context.Context, req province.UpdateProvinceRequest) error {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.province.update", "province", req.ID, "", err)
		return err
	}
	return s.mutate(ctx, "master.province.update", "province", func(ctx context.Context) (string, string, error) {
		return req.ID, "province updated", s.provinces.Update(ctx, req)
	})
}

func (s *Service) DeleteProvince(ctx context.Context, id string) error {
	return s.mutate(ctx, "master.province.delete", "province", func(ctx context.Context) (string, string, error) {
		return id, "province deactivated", s.provinces.SoftDelete(ctx, id)
	})
}

// CreateBarangay validates the parent province before inserting.
func (s *Service) CreateBarangay(ctx context.Context, req barangay.CreateBarangayRequest) (barangay.Barangay, error) {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.barangay.create", "barangay", "", "", err)
		return barangay.Barangay{}, err
	}

	var created barangay.Barangay
	err := s.mutate(ctx, "master.barangay.create", "barangay", func(ctx context.Context) (string, string, error) {
		parent, err := s.provinces.GetByID(ctx, req.ProvinceID)
		if err != nil {
			return "", "", err
		}
		if !parent.IsActive {
			return "", "", province.ErrProvinceNotFound
		}

		created, err = s.barangays.Create(ctx, barangay.Barangay{
			ProvinceID: parent.ID,
			Name:       req.Name,
			City:       req.City,
		})
		if err != nil {
			return "", "", err
		}
		return created.ID, "barangay " + created.Name + " created", nil
	})
	if err != nil {
		return barangay.Barangay{}, err
	}
	return created, nil
}

func (s *Service) ListBarangays(ctx context.Context, provinceID string, includeInactive bool) ([]barangay.Barangay, error) {
	return s.barangays.ListByProvince(ctx, provinceID, includeInactive)
}

func (s *Service) UpdateBarangay(ctx context.Context, req barangay.UpdateBarangayRequest) error {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.barangay.update", "barangay", req.ID, "", err)
		return err
	}
	return s.mutate(ctx, "master.barangay.update", "barangay", func(ctx context.Context) (string, string, error) {
		if req.ProvinceID != nil {
			parent, err := s.provinces.GetByID(ctx, *req.ProvinceID)
			if err != nil {
				return "", "", err
			}
			if !parent.IsActive {
				return "", "", province.ErrProvinceNotFound
			}
		}
		return req.ID, "barangay updated", s.barangays.Update(ctx, req)
	})
}

func (s *Service) DeleteBarangay(ctx context.Context, id string) error {
	return s.mutate(ctx, "master.barangay.delete", "barangay", func(ctx context.Context) (string, string, error) {
		return id, "barangay deactivated", s.barangays.SoftDelete(ctx, id)
	})
}

func (s *Service) CreateReligion(ctx context.Context, req religion.CreateReligionRequest) (religion.Religion, error) {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.religion.create", "religion", "", "", err)
		return religion.Religion{}, err
	}

	var created religion.Religion
	err := s.mutate(ctx, "master.religion.create", "religion", func(ctx context.Context) (string, string, error) {
		var err error
		created, err = s.religions.Create(ctx, religion.Religion{Name: req.Name})
		if err != nil {
			return "", "", err
		}
		return created.ID, "religion " + created.Name + " created", nil
	})
	if err != nil {
		return religion.Religion{}, err
	}
	return created, nil
}

func (s *Service) ListReligions(ctx context.Context, includeInactive bool) ([]religion.Religion, error) {
	return s.religions.List(ctx, includeInactive)
}

func (s *Service) UpdateReligion(ctx context.Context, req religion.UpdateReligionRequest) error {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.religion.update", "religion", req.ID, "", err)
		return err
	}
	return s.mutate(ctx, "master.religion.update", "religion", func(ctx context.Context) (string, string, error) {
		return req.ID, "religion updated", s.religions.Update(ctx, req)
	})
}

func (s *Service) DeleteReligion(ctx context.Context, id string) error {
	return s.mutate(ctx, "master.religion.delete", "religion", func(ctx context.Context) (string, string, error) {
		return id, "religion deactivated", s.religions.SoftDelete(ctx, id)
	})
}

func (s *Service) CreateCivilStatus(ctx context.Context, req civilstatus.CreateCivilStatusRequest) (civilstatus.CivilStatus, error) {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.civilstatus.create", "civil_status", "", "", err)
		return civilstatus.CivilStatus{}, err
	}

	var created civilstatus.CivilStatus
	err := s.mutate(ctx, "master.civilstatus.create", "civil_status", func(ctx context.Context) (string, string, error) {
		var err error
		created, err = s.civilStatuses.Create(ctx, civilstatus.CivilStatus{Name: req.Name})
		if err != nil {
			return "", "", err
		}
		return created.ID, "civil status " + created.Name + " created", nil
	})
	if err != nil {
		return civilstatus.CivilStatus{}, err
	}
	return created, nil
}

func (s *Service) ListCivilStatuses(ctx context.Context, includeInactive bool) ([]civilstatus.CivilStatus, error) {
	return s.civilStatuses.List(ctx, includeInactive)
}

func (s *Service) UpdateCivilStatus(ctx context.Context, req civilstatus.UpdateCivilStatusRequest) error {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.civilstatus.update", "civil_status", req.ID, "", err)
		return err
	}
	return s.mutate(ctx, "master.civilstatus.update", "civil_status", func(ctx context.Context) (string, string, error) {
		return req.ID, "civil status updated", s.civilStatuses.Update(ctx, req)
	})
}

func (s *Service) DeleteCivilStatus(ctx context.Context, id string) error {
	return s.mutate(ctx, "master.civilstatus.delete", "civil_status", func(ctx context.Context) (string, string, error) {
		return id, "civil status deactivated", s.civilStatuses.SoftDelete(ctx, id)
	})
}

func (s *Service) CreateJobTitle(ctx context.Context, req jobtitle.CreateJobTitleRequest) (jobtitle.JobTitle, error) {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.jobtitle.create", "job_title", "", "", err)
		return jobtitle.JobTitle{}, err
	}

	var created jobtitle.JobTitle
	err := s.mutate(ctx, "master.jobtitle.create", "job_title", func(ctx context.Context) (string, string, error) {
		var err error
		created, err = s.jobTitles.Create(ctx, jobtitle.JobTitle{Name: req.Name, Description: req.Description})
		if err != nil {
			return "", "", err
		}
		return created.ID, "job title " + created.Name + " created", nil
	})
	if err != nil {
		return jobtitle.JobTitle{}, err
	}
	return created, nil
}

func (s *Service) ListJobTitles(ctx context.Context, includeInactive bool) ([]jobtitle.JobTitle, error) {
	return s.jobTitles.List(ctx, includeInactive)
}

func (s *Service) UpdateJobTitle(ctx context.Context, req jobtitle.UpdateJobTitleRequest) error {
	if err := req.Validate(); err != nil {
		s.record(ctx, "master.jobtitle.update", "job_title", req.ID, "", err)
		return err
	}
	return s.mutate(ctx, "master.jobtitle.update", "job_title", func(ctx context.Context) (string, string, error) {
		return req.ID, "job title updated", s.jobTitles.Update(ctx, req)
	})
}

func (s *Service) DeleteJobTitle(ctx context.Context, id string) error {
	return s.mutate(ctx, "master.jobtitle.delete", "job_title", func(ctx context.Context) (string, string, error) {
		return id, "job title deactivated", s.jobTitles.SoftDelete(ctx, id)
	})
}
