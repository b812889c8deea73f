package master

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hr201-backend-go/internal/domain/audit"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/barangay"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/civilstatus"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/jobtitle"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/province"
	"github.com/bayanihr/hr201-backend-go/internal/domain/master/religion"
)

type noopTx struct{}

func (noopTx) InTx(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

type recordingAuditRepo struct {
	entries []audit.Entry
}

func (r *recordingAuditRepo) Record(_ context.Context, entry audit.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingAuditRepo) List(context.Context, audit.Filter, int, int) ([]audit.Entry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type fakeProvinceRepo struct {
	getByID func(ctx context.Context, id string) (province.Province, error)
}

func (f *fakeProvinceRepo) Create(_ context.Context, p province.Province) (province.Province, error) {
	p.ID = "prov-1"
	p.IsActive = true
	return p, nil
}

func (f *fakeProvinceRepo) GetByID(ctx context.Context, id string) (province.Province, error) {
	if f.getByID == nil {
		return province.Province{}, province.ErrProvinceNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeProvinceRepo) List(context.Context, bool) ([]province.Province, error) {
	return nil, nil
}

func (f *fakeProvinceRepo) Update(context.Context, province.UpdateProvinceRequest) error {
	return nil
}

func (f *fakeProvinceRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeBarangayRepo struct{}

func (fakeBarangayRepo) Create(_ context.Context, b barangay.Barangay) (barangay.Barangay, error) {
	b.ID = "brgy-1"
	b.IsActive = true
	return b, nil
}

func (fakeBarangayRepo) GetByID(context.Context, string) (barangay.Barangay, error) {
	return barangay.Barangay{}, barangay.ErrBarangayNotFound
}

func (fakeBarangayRepo) ListByProvince(context.Context, string, bool) ([]barangay.Barangay, error) {
	return nil, nil
}

func (fakeBarangayRepo) Update(context.Context, barangay.UpdateBarangayRequest) error {
	return nil
}

func (fakeBarangayRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeReligionRepo struct{}

func (fakeReligionRepo) Create(_ context.Context, r religion.Religion) (religion.Religion, error) {
	r.ID = "rel-1"
	return r, nil
}

func (fakeReligionRepo) GetByID(context.Context, string) (religion.Religion, error) {
	return religion.Religion{}, religion.ErrReligionNotFound
}

func (fakeReligionRepo) List(context.Context, bool) ([]religion.Religion, error) {
	return nil, nil
}

func (fakeReligionRepo) Update(context.Context, religion.UpdateReligionRequest) error {
	return nil
}

func (fakeReligionRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeCivilStatusRepo struct{}

func (fakeCivilStatusRepo) Create(_ context.Context, c civilstatus.CivilStatus) (civilstatus.CivilStatus, error) {
	c.ID = "cs-1"
	return c, nil
}

func (fakeCivilStatusRepo) GetByID(context.Context, string) (civilstatus.CivilStatus, error) {
	return civilstatus.CivilStatus{}, civilstatus.ErrCivilStatusNotFound
}

func (fakeCivilStatusRepo) List(context.Context, bool) ([]civilstatus.CivilStatus, error) {
	return nil, nil
}

func (fakeCivilStatusRepo) Update(context.Context, civilstatus.UpdateCivilStatusRequest) error {
	return nil
}

func (fakeCivilStatusRepo) SoftDelete(context.Context, string) error {
	return nil
}

type fakeJobTitleRepo struct{}

func (fakeJobTitleRepo) Create(_ context.Context, j jobtitle.JobTitle) (jobtitle.JobTitle, error) {
	j.ID = "jt-1"
	return j, nil
}

func (fakeJobTitleRepo) GetByID(context.Context, string) (jobtitle.JobTitle, error) {
	return jobtitle.JobTitle{}, jobtitle.ErrJobTitleNotFound
}

func (fakeJobTitleRepo) List(context.Context, bool) ([]jobtitle.JobTitle, error) {
	return nil, nil
}

func (fakeJobTitleRepo) Update(context.Context, jobtitle.UpdateJobTitleRequest) error {
	return nil
}

func (fakeJobTitleRepo) SoftDelete(context.Context, string) error {
	return nil
}

func newFixture() (*Service, *fakeProvinceRepo, *recordingAuditRepo) {
	provinces := &fakeProvinceRepo{}
	audits := &recordingAuditRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(provinces, fakeBarangayRepo{}, fakeReligionRepo{},
		fakeCivilStatusRepo{}, fakeJobTitleRepo{}, audits, noopTx{}, logger)
	return svc, provinces, audits
}

func TestCreateProvince(t *testing.T) {
	svc, _, audits := newFixture()

	created, err := svc.CreateProvince(context.Background(), province.CreateProvinceRequest{Name: "Cebu"})
	require.NoError(t, err)
	assert.Equal(t, "prov-1", created.ID)

	require.Len(t, audits.entries, 1)
	assert.True(t, audits.entries[0].Success)
	assert.Equal(t, "master.province.create", audits.entries[0].Action)
}

func TestCreateProvinceRequiresName(t *testing.T) {
	svc, _, audits := newFixture()

	_, err := svc.CreateProvince(context.Background(), province.CreateProvinceRequest{})
	require.Error(t, err)

	require.Len(t, audits.entries, 1)
	assert.False(t, audits.entries[0].Success)
}

func TestCreateBarangayRequiresActiveProvince(t *testing.T) {
	svc, provinces, _ := newFixture()

	_, err := svc.CreateBarangay(context.Background(), barangay.CreateBarangayRequest{
		ProvinceID: "missing", Name: "Lahug",
	})
	assert.ErrorIs(t, err, province.ErrProvinceNotFound)

	provinces.getByID = func(_ context.Context, id string) (province.Province, error) {
		return province.Province{ID: id, Name: "Cebu", IsActive: false}, nil
	}
	_, err = svc.CreateBarangay(context.Background(), barangay.CreateBarangayRequest{
		ProvinceID: "prov-1", Name: "Lahug",
	})
	assert.ErrorIs(t, err, province.ErrProvinceNotFound)
}

func TestCreateBarangay(t *testing.T) {
	svc, provinces, _ := newFixture()
	provinces.getByID = func(_ context.Context, id string) (province.Province, error) {
		return province.Province{ID: id, Name: "Cebu", IsActive: true}, nil
	}

	created, err := svc.CreateBarangay(context.Background(), barangay.CreateBarangayRequest{
		ProvinceID: "prov-1", Name: "Lahug",
	})
	require.NoError(t, err)
	assert.Equal(t, "brgy-1", created.ID)
	assert.Equal(t, "prov-1", created.ProvinceID)
}

func TestCreateJobTitle(t *testing.T) {
	svc, _, _ := newFixture()

	created, err := svc.CreateJobTitle(context.Background(), jobtitle.CreateJobTitleRequest{Name: "HR Officer"})
	require.NoError(t, err)
	assert.Equal(t, "jt-1", created.ID)
}
