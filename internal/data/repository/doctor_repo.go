package repository

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/pkg/database"

	"go.uber.org/zap"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id string) error
}

type doctorRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewDoctorRepository(db database.DBTX, log *zap.Logger) DoctorRepository {
	return &doctorRepository{
		db:  db,
		log: log.With(zap.String("repository", "doctor")),
	}
}

func (r *doctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, specialization, email, phone, availability, experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return execOne(ctx, r.db, r.log, "create", "doctor", d.ID, query,
		d.ID, d.Name, d.Specialization, d.Email, d.Phone, d.Availability, d.Experience)
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	return collect[entity.Doctor](ctx, r.db, r.log, "doctors",
		`SELECT id, name, specialization, email, phone, availability, experience FROM doctors ORDER BY name`)
}

func (r *doctorRepository) Update(ctx context.Context, d *entity.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $2, specialization = $3, email = $4, phone = $5, availability = $6, experience = $7
		WHERE id = $1
	`
	return execOne(ctx, r.db, r.log, "update", "doctor", d.ID, query,
		d.ID, d.Name, d.Specialization, d.Email, d.Phone, d.Availability, d.Experience)
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, r.log, "delete", "doctor", id, `DELETE FROM doctors WHERE id = $1`, id)
}
