package repository

import (
	"context"
	"errors"
	"fmt"

	"zoo-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Employee     EmployeeRepository
	Animal       AnimalRepository
	Cage         CageRepository
	Doctor       DoctorRepository
	Event        EventRepository
	Ticket       TicketRepository
	TicketSale   TicketSaleRepository
	Visitor      VisitorRepository
	Inventory    InventoryRepository
	MedicalCheck MedicalCheckRepository
	Vaccination  VaccinationRepository
	ZooInfo      ZooInfoRepository
	Attendance   AttendanceRepository
	Job          JobRepository
	StockRequest StockRequestRepository
	Dashboard    DashboardRepository

	// db is nil on a transaction-scoped Repository.
	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := build(db, log)
	r.db = db
	return r
}

func build(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Employee:     NewEmployeeRepository(db, log),
		Animal:       NewAnimalRepository(db, log),
		Cage:         NewCageRepository(db, log),
		Doctor:       NewDoctorRepository(db, log),
		Event:        NewEventRepository(db, log),
		Ticket:       NewTicketRepository(db, log),
		TicketSale:   NewTicketSaleRepository(db, log),
		Visitor:      NewVisitorRepository(db, log),
		Inventory:    NewInventoryRepository(db, log),
		MedicalCheck: NewMedicalCheckRepository(db, log),
		Vaccination:  NewVaccinationRepository(db, log),
		ZooInfo:      NewZooInfoRepository(db, log),
		Attendance:   NewAttendanceRepository(db, log),
		Job:          NewJobRepository(db, log),
		StockRequest: NewStockRequestRepository(db, log),
		Dashboard:    NewDashboardRepository(db, log),
		log:          log,
	}
}

// WithinTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back on an error or
// panic, so none of fn's writes are visible unless all of them succeed.
func (r *Repository) WithinTx(ctx context.Context, fn func(tx *Repository) error) (err error) {
	if r.db == nil {
		return errors.New("nested transactions are not supported")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.log.Error("Failed to roll back transaction", zap.Error(rbErr))
			}
			return
		}
		if cErr := tx.Commit(ctx); cErr != nil {
			err = fmt.Errorf("commit transaction: %w", classify(cErr))
		}
	}()

	return fn(build(tx, r.log))
}
