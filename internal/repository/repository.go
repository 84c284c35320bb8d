package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data-access interfaces.
type Repository struct {
	Tx             TxManager
	User           UserRepository
	Lab            LabRepository
	PC             PCRepository
	Booking        BookingRepository
	ClassPeriod    ClassPeriodRepository
	PCAvailability PCAvailabilityRepository
	Maintenance    MaintenanceRepository
}

// TxManager provides the transaction boundary for multi-step writes.
type TxManager interface {
	// Transaction runs fn against a Repository bound to one database
	// transaction. Any error rolls the whole transaction back.
	Transaction(ctx context.Context, fn func(txRepo *Repository) error) error
	// LockSchedule serializes schedule writes for one resource. Must be
	// called inside a transaction; the lock is released on commit/rollback.
	LockSchedule(ctx context.Context, key string) error
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Tx:             &gormTxManager{db: db},
		User:           NewUserRepo(db),
		Lab:            NewLabRepo(db),
		PC:             NewPCRepo(db),
		Booking:        NewBookingRepo(db),
		ClassPeriod:    NewClassPeriodRepo(db),
		PCAvailability: NewPCAvailabilityRepo(db),
		Maintenance:    NewMaintenanceRepo(db),
	}
}

type gormTxManager struct {
	db *gorm.DB
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// LockSchedule takes a per-resource advisory lock so that the overlap
// check and the subsequent insert are atomic relative to concurrent
// inserts on the same resource.
func (m *gormTxManager) LockSchedule(ctx context.Context, key string) error {
	return m.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}
