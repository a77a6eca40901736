package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type MedicalCheckRepository interface {
	Create(ctx context.Context, check *entity.MedicalCheck) error
	FindAll(ctx context.Context) ([]*entity.MedicalCheck, error)
	Update(ctx context.Context, check *entity.MedicalCheck) error
	Delete(ctx context.Context, id string) error
}

type medicalCheckRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewMedicalCheckRepository(db database.DBTX, log *zap.Logger) MedicalCheckRepository {
	return &medicalCheckRepository{
		db:  db,
		log: log.With(zap.String("repository", "medical_check")),
	}
}

func (r *medicalCheckRepository) Create(ctx context.Context, m *entity.MedicalCheck) error {
	query := `
		INSERT INTO medical_checks (id, animal_id, doctor_id, date, diagnosis, treatment, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	return execOne(ctx, r.db, r.log, "create", "medical check", m.ID, query,
		m.ID, m.AnimalID, m.DoctorID, m.Date, m.Diagnosis, m.Treatment, m.Status, m.Notes)
}

func (r *medicalCheckRepository) FindAll(ctx context.Context) ([]*entity.MedicalCheck, error) {
	return collect[entity.MedicalCheck](ctx, r.db, r.log, "medical checks",
		`SELECT id, animal_id, doctor_id, date, diagnosis, treatment, status, notes
		 FROM medical_checks ORDER BY date DESC`)
}

func (r *medicalCheckRepository) Update(ctx context.Context, m *entity.MedicalCheck) error {
	query := `
		UPDATE medical_checks
		SET animal_id = $2, doctor_id = $3, date = $4, diagnosis = $5,
		    treatment = $6, status = $7, notes = $8
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "medical check", m.ID, query,
		m.ID, m.AnimalID, m.DoctorID, m.Date, m.Diagnosis, m.Treatment, m.Status, m.Notes)
}

func (r *medicalCheckRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "medical check", id, `DELETE FROM medical_checks WHERE id = $1`, id)
}

type VaccinationRepository interface {
	Create(ctx context.Context, vaccination *entity.Vaccination) error
	FindAll(ctx context.Context) ([]*entity.Vaccination, error)
	Update(ctx context.Context, vaccination *entity.Vaccination) error
	Delete(ctx context.Context, id string) error
}

type vaccinationRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewVaccinationRepository(db database.DBTX, log *zap.Logger) VaccinationRepository {
	return &vaccinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "vaccination")),
	}
}

func (r *vaccinationRepository) Create(ctx context.Context, v *entity.Vaccination) error {
	query := `
		INSERT INTO vaccinations (id, animal_id, vaccine_name, date_administered, next_due_date, veterinarian, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return execOne(ctx, r.db, r.log, "create", "vaccination", v.ID, query,
		v.ID, v.AnimalID, v.VaccineName, v.DateAdministered, v.NextDueDate, v.Veterinarian, v.Notes)
}

func (r *vaccinationRepository) FindAll(ctx context.Context) ([]*entity.Vaccination, error) {
	return collect[entity.Vaccination](ctx, r.db, r.log, "vaccinations",
		`SELECT id, animal_id, vaccine_name, date_administered, next_due_date, veterinarian, notes
		 FROM vaccinations ORDER BY next_due_date`)
}

func (r *vaccinationRepository) Update(ctx context.Context, v *entity.Vaccination) error {
	query := `
		UPDATE vaccinations
		SET animal_id = $2, vaccine_name = $3, date_administered = $4,
		    next_due_date = $5, veterinarian = $6, notes = $7
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "vaccination", v.ID, query,
		v.ID, v.AnimalID, v.VaccineName, v.DateAdministered, v.NextDueDate, v.Veterinarian, v.Notes)
}

func (r *vaccinationRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "vaccination", id, `DELETE FROM vaccinations WHERE id = $1`, id)
}
