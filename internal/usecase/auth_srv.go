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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	hasher utils.PasswordHasher
	log    *zap.Logger
	now    Clock
}

func NewAuthService(repo *repository.Repository, hasher utils.PasswordHasher, log *zap.Logger, now Clock) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		log:    log,
		now:    now,
	}
}

// Register creates a login account. Choosing the employee role also files
// a Pending employee record under the same id; both rows are written in
// one transaction so a candidate never exists without a login or the
// other way around.
func (as *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleVisitor
	}

	password, err := as.hasher.Encode(req.Password)
	if err != nil {
		as.log.Error("Failed to hash password", zap.Error(err))
		return nil, storageErr("register", err)
	}

	now := as.now()
	user := &entity.User{
		ID:       utils.GenerateID("user", now),
		Name:     req.Name,
		Email:    req.Email,
		Password: password,
		Role:     role,
	}

	err = as.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}

		if role != entity.RoleEmployee {
			return nil
		}

		return tx.Employee.Create(ctx, &entity.Employee{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     "Staff",
			Phone:    "",
			Salary:   0,
			JoinDate: utils.FormatDate(now),
			Status:   entity.EmployeePending,
		})
	})
	if err != nil {
		as.log.Warn("Registration failed", zap.Error(err), zap.String("email", req.Email))
		return nil, storageErr("register", err)
	}

	as.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(role)),
	)

	return response.UserToResponse(user), nil
}

func (as *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := as.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storageErr("login", err)
	}
	if user == nil || !as.hasher.Matches(req.Password, user.Password) {
		as.log.Info("Login rejected", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	return response.UserToResponse(user), nil
}
