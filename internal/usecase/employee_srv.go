package usecase

import (
	"context"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/dto/response"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

type EmployeeService interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	Get(ctx context.Context, id string) (*entity.Employee, error)
	Create(ctx context.Context, req *request.EmployeeRequest) (*entity.Employee, error)
	Update(ctx context.Context, id string, req *request.EmployeeUpdateRequest) (*entity.Employee, error)
	Delete(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, req *request.ProfileRequest) error
	Salaries(ctx context.Context) ([]response.SalaryResponse, error)
}

type employeeService struct {
	repo            *repository.Repository
	hasher          utils.PasswordHasher
	defaultPassword string
	log             *zap.Logger
	now             Clock
}

func NewEmployeeService(repo *repository.Repository, hasher utils.PasswordHasher, defaultPassword string, log *zap.Logger, now Clock) EmployeeService {
	return &employeeService{
		repo:            repo,
		hasher:          hasher,
		defaultPassword: defaultPassword,
		log:             log.With(zap.String("service", "employee")),
		now:             now,
	}
}

func (es *employeeService) List(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := es.repo.Employee.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list employees", err)
	}
	return employees, nil
}

func (es *employeeService) Get(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := es.repo.Employee.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("get employee", err)
	}
	if employee == nil {
		return nil, ErrNotFound
	}
	return employee, nil
}

// Create inserts the employee and, unless a login with the same email
// already exists, a user account with the default password. Either both
// rows are written or neither is.
func (es *employeeService) Create(ctx context.Context, req *request.EmployeeRequest) (*entity.Employee, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Phone:    req.Phone,
		JoinDate: req.JoinDate,
		Status:   entity.EmployeeStatus(req.Status),
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if employee.Status == "" {
		employee.Status = entity.EmployeeActive
	}
	if employee.JoinDate == "" {
		employee.JoinDate = utils.FormatDate(es.now())
	}

	err := es.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Employee.Create(ctx, employee); err != nil {
			return err
		}

		existing, err := tx.User.FindByEmail(ctx, employee.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			es.log.Info("User account already exists",
				zap.String("employee_id", employee.ID),
				zap.String("user_id", existing.ID),
			)
			return nil
		}

		password, err := es.hasher.Encode(es.defaultPassword)
		if err != nil {
			return err
		}

		return tx.User.Create(ctx, &entity.User{
			ID:       employee.ID,
			Name:     employee.Name,
			Email:    employee.Email,
			Password: password,
			Role:     entity.RoleEmployee,
		})
	})
	if err != nil {
		return nil, storageErr("create employee", err)
	}

	es.log.Info("Employee created", zap.String("employee_id", employee.ID))
	return employee, nil
}

// Update applies the provided fields and copies name and email onto the
// paired user account, if there is one, in the same transaction.
func (es *employeeService) Update(ctx context.Context, id string, req *request.EmployeeUpdateRequest) (*entity.Employee, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var updated *entity.Employee
	err := es.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		employee, err := tx.Employee.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if employee == nil {
			return repository.ErrNotFound
		}

		applyEmployeeUpdate(employee, req)
		if err := tx.Employee.Update(ctx, employee); err != nil {
			return err
		}

		user, err := tx.User.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			es.log.Info("No user account to sync", zap.String("employee_id", id))
		} else if err := tx.User.UpdateIdentity(ctx, id, employee.Name, employee.Email); err != nil {
			return err
		}

		updated = employee
		return nil
	})
	if err != nil {
		return nil, storageErr("update employee", err)
	}

	return updated, nil
}

func applyEmployeeUpdate(e *entity.Employee, req *request.EmployeeUpdateRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.JoinDate != nil {
		e.JoinDate = *req.JoinDate
	}
	if req.Status != nil {
		e.Status = entity.EmployeeStatus(*req.Status)
	}
}

// Delete removes only the employee row; the login account is kept.
func (es *employeeService) Delete(ctx context.Context, id string) error {
	if err := es.repo.Employee.Delete(ctx, id); err != nil {
		return storageErr("delete employee", err)
	}
	return nil
}

// UpdateProfile is not transactional. The employee row is authoritative; a
// failure to copy the email onto the user account is logged and ignored.
func (es *employeeService) UpdateProfile(ctx context.Context, id string, req *request.ProfileRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	if err := es.repo.Employee.UpdateContact(ctx, id, req.Phone, req.Email); err != nil {
		return storageErr("update profile", err)
	}

	if req.Email != "" {
		if err := es.repo.User.UpdateEmail(ctx, id, req.Email); err != nil {
			es.log.Warn("Failed to sync user email",
				zap.Error(err),
				zap.String("employee_id", id),
			)
		}
	}

	return nil
}

func (es *employeeService) Salaries(ctx context.Context) ([]response.SalaryResponse, error) {
	employees, err := es.repo.Employee.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list salaries", err)
	}

	salaries := make([]response.SalaryResponse, 0, len(employees))
	for _, e := range employees {
		salaries = append(salaries, response.EmployeeToSalary(e))
	}
	return salaries, nil
}
