package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
	"github.com/sidd-coder1/Fullstack-LMS/internal/repository"
)

// ── Mock TxManager ──

// mockTxManager runs the callback against the same Repository, so
// writes inside "transactions" are visible to assertions. Lock keys are
// recorded for verification.
type mockTxManager struct {
	repo     *repository.Repository
	lockKeys []string
}

func (m *mockTxManager) Transaction(_ context.Context, fn func(txRepo *repository.Repository) error) error {
	return fn(m.repo)
}

func (m *mockTxManager) LockSchedule(_ context.Context, key string) error {
	m.lockKeys = append(m.lockKeys, key)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock LabRepository ──

type mockLabRepo struct {
	labs map[string]*model.Lab
	pcs  *mockPCRepo
}

func newMockLabRepo(pcs *mockPCRepo) *mockLabRepo {
	return &mockLabRepo{labs: make(map[string]*model.Lab), pcs: pcs}
}

func (m *mockLabRepo) Create(_ context.Context, lab *model.Lab) error {
	if lab.LabID == "" {
		lab.LabID = "lab-" + lab.Name
	}
	m.labs[lab.LabID] = lab
	return nil
}

func (m *mockLabRepo) GetByID(_ context.Context, id string) (*model.Lab, error) {
	if l, ok := m.labs[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLabRepo) List(_ context.Context, offset, limit int) ([]model.Lab, int64, error) {
	var result []model.Lab
	for _, l := range m.labs {
		result = append(result, *l)
	}
	return result, int64(len(result)), nil
}

func (m *mockLabRepo) Update(_ context.Context, lab *model.Lab) error {
	m.labs[lab.LabID] = lab
	return nil
}

func (m *mockLabRepo) Delete(_ context.Context, id string) error {
	delete(m.labs, id)
	return nil
}

func (m *mockLabRepo) CountPCs(_ context.Context, labID string) (int64, error) {
	var n int64
	for _, pc := range m.pcs.pcs {
		if pc.LabID == labID {
			n++
		}
	}
	return n, nil
}

// ── Mock PCRepository ──

type mockPCRepo struct {
	pcs       map[string]*model.PC
	idCounter int
}

func newMockPCRepo() *mockPCRepo {
	return &mockPCRepo{pcs: make(map[string]*model.PC)}
}

func (m *mockPCRepo) Create(_ context.Context, pc *model.PC) error {
	if pc.PCID == "" {
		m.idCounter++
		pc.PCID = fmt.Sprintf("pc-%d", m.idCounter)
	}
	m.pcs[pc.PCID] = pc
	return nil
}

func (m *mockPCRepo) GetByID(_ context.Context, id string) (*model.PC, error) {
	if pc, ok := m.pcs[id]; ok {
		return pc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPCRepo) ListByLab(_ context.Context, labID string) ([]model.PC, error) {
	var result []model.PC
	for _, pc := range m.pcs {
		if pc.LabID == labID {
			result = append(result, *pc)
		}
	}
	return result, nil
}

func (m *mockPCRepo) Update(_ context.Context, pc *model.PC) error {
	m.pcs[pc.PCID] = pc
	return nil
}

func (m *mockPCRepo) Delete(_ context.Context, id string) error {
	delete(m.pcs, id)
	return nil
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings  map[string]*model.Booking
	idCounter int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, b *model.Booking) error {
	if b.BookingID == "" {
		m.idCounter++
		b.BookingID = fmt.Sprintf("booking-%d", m.idCounter)
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()
	m.bookings[b.BookingID] = b
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) List(_ context.Context, f repository.BookingFilter) ([]model.Booking, int64, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if f.PCID != "" && (b.PCID == nil || *b.PCID != f.PCID) {
			continue
		}
		if f.LabID != "" && (b.LabID == nil || *b.LabID != f.LabID) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		result = append(result, *b)
	}
	return result, int64(len(result)), nil
}

func (m *mockBookingRepo) ListConfirmedForPC(_ context.Context, pcID string, start, end time.Time) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.PCID == nil || *b.PCID != pcID || b.Status != model.BookingStatusConfirmed {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) ListConfirmedForLab(_ context.Context, labID string, start, end time.Time) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.PCID != nil || b.LabID == nil || *b.LabID != labID || b.Status != model.BookingStatusConfirmed {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id, status string, updatedBy string) error {
	b, ok := m.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	b.UpdatedBy = &updatedBy
	b.UpdatedAt = time.Now()
	return nil
}

// ── Mock ClassPeriodRepository ──

type mockClassPeriodRepo struct {
	periods   map[string]*model.ClassPeriod
	idCounter int
}

func newMockClassPeriodRepo() *mockClassPeriodRepo {
	return &mockClassPeriodRepo{periods: make(map[string]*model.ClassPeriod)}
}

func (m *mockClassPeriodRepo) Create(_ context.Context, period *model.ClassPeriod) error {
	if period.ClassPeriodID == "" {
		m.idCounter++
		period.ClassPeriodID = fmt.Sprintf("period-%d", m.idCounter)
	}
	period.CreatedAt = time.Now()
	period.UpdatedAt = time.Now()
	m.periods[period.ClassPeriodID] = period
	return nil
}

func (m *mockClassPeriodRepo) GetByID(_ context.Context, id string) (*model.ClassPeriod, error) {
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassPeriodRepo) GetBySlot(_ context.Context, labID string, dayOfWeek int, start, end string) (*model.ClassPeriod, error) {
	for _, p := range m.periods {
		if p.LabID == labID && p.DayOfWeek == dayOfWeek && string(p.PeriodStart) == start && string(p.PeriodEnd) == end {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassPeriodRepo) ListByLab(_ context.Context, labID string, dayOfWeek *int) ([]model.ClassPeriod, error) {
	var result []model.ClassPeriod
	for _, p := range m.periods {
		if p.LabID != labID {
			continue
		}
		if dayOfWeek != nil && p.DayOfWeek != *dayOfWeek {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockClassPeriodRepo) Delete(_ context.Context, id string) error {
	delete(m.periods, id)
	return nil
}

// ── Mock PCAvailabilityRepository ──

type mockPCAvailabilityRepo struct {
	rows map[string]*model.PCAvailability // keyed pc_id:class_period_id
	pcs  *mockPCRepo
}

func newMockPCAvailabilityRepo(pcs *mockPCRepo) *mockPCAvailabilityRepo {
	return &mockPCAvailabilityRepo{rows: make(map[string]*model.PCAvailability), pcs: pcs}
}

func (m *mockPCAvailabilityRepo) Upsert(_ context.Context, rows []model.PCAvailability) error {
	for i := range rows {
		r := rows[i]
		key := r.PCID + ":" + r.ClassPeriodID
		if existing, ok := m.rows[key]; ok {
			existing.IsAvailable = r.IsAvailable
			continue
		}
		r.PCAvailabilityID = fmt.Sprintf("avail-%d", len(m.rows)+1)
		m.rows[key] = &r
	}
	return nil
}

func (m *mockPCAvailabilityRepo) ListByPeriod(_ context.Context, classPeriodID string) ([]model.PCAvailability, error) {
	var result []model.PCAvailability
	for _, r := range m.rows {
		if r.ClassPeriodID != classPeriodID {
			continue
		}
		row := *r
		row.PC = m.pcs.pcs[r.PCID]
		result = append(result, row)
	}
	return result, nil
}

// ── Mock MaintenanceRepository ──

type mockMaintenanceRepo struct {
	requests  map[string]*model.MaintenanceRequest
	idCounter int
}

func newMockMaintenanceRepo() *mockMaintenanceRepo {
	return &mockMaintenanceRepo{requests: make(map[string]*model.MaintenanceRequest)}
}

func (m *mockMaintenanceRepo) Create(_ context.Context, req *model.MaintenanceRequest) error {
	if req.MaintenanceRequestID == "" {
		m.idCounter++
		req.MaintenanceRequestID = fmt.Sprintf("mr-%d", m.idCounter)
	}
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	m.requests[req.MaintenanceRequestID] = req
	return nil
}

func (m *mockMaintenanceRepo) GetByID(_ context.Context, id string) (*model.MaintenanceRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaintenanceRepo) List(_ context.Context, f repository.MaintenanceFilter) ([]model.MaintenanceRequest, int64, error) {
	var result []model.MaintenanceRequest
	for _, r := range m.requests {
		if f.PCID != "" && (r.PCID == nil || *r.PCID != f.PCID) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		result = append(result, *r)
	}
	return result, int64(len(result)), nil
}

func (m *mockMaintenanceRepo) Update(_ context.Context, req *model.MaintenanceRequest) error {
	req.UpdatedAt = time.Now()
	m.requests[req.MaintenanceRequestID] = req
	return nil
}

func (m *mockMaintenanceRepo) CountActiveForPC(_ context.Context, pcID string) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.PCID != nil && *r.PCID == pcID && r.Status != model.MaintenanceStatusClosed {
			n++
		}
	}
	return n, nil
}

// ── aggregate helper ──

// testRepos bundles all mocks so tests can seed data directly.
type testRepos struct {
	tx             *mockTxManager
	user           *mockUserRepo
	lab            *mockLabRepo
	pc             *mockPCRepo
	booking        *mockBookingRepo
	classPeriod    *mockClassPeriodRepo
	pcAvailability *mockPCAvailabilityRepo
	maintenance    *mockMaintenanceRepo
}

func newTestRepos() *testRepos {
	pc := newMockPCRepo()
	return &testRepos{
		tx:             &mockTxManager{},
		user:           newMockUserRepo(),
		lab:            newMockLabRepo(pc),
		pc:             pc,
		booking:        newMockBookingRepo(),
		classPeriod:    newMockClassPeriodRepo(),
		pcAvailability: newMockPCAvailabilityRepo(pc),
		maintenance:    newMockMaintenanceRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	agg := &repository.Repository{
		Tx:             r.tx,
		User:           r.user,
		Lab:            r.lab,
		PC:             r.pc,
		Booking:        r.booking,
		ClassPeriod:    r.classPeriod,
		PCAvailability: r.pcAvailability,
		Maintenance:    r.maintenance,
	}
	r.tx.repo = agg
	return agg
}
