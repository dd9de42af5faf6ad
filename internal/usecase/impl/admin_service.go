package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/sebvsnk/Base-E-commerce/internal/delivery/context"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	domainerrors "github.com/sebvsnk/Base-E-commerce/internal/domain/errors"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAuditLimit = 100

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AuditRepo repository.AuditLogRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:  params.UserRepo,
		auditRepo: params.AuditRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves all accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser lets an admin create an account with any role.
func (srv *adminService) CreateUser(ctx context.Context, actorID uuid.UUID, input *usecase.RegisterInput, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid role")
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhone, "create user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "create user")
	}

	newUser := &entity.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
		Name:         input.Name,
		LastName:     input.LastName,
		Phone:        input.Phone,
		RUN:          input.RUN,
		Role:         role,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Account created by staff",
		slog.Any("userID", newUser.ID),
		slog.String("role", role.String()),
		slog.Any("actorID", actorID))
	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "USER_CREATE", "User", newUser.ID.String(),
		map[string]any{"role": role.String()})

	return newUser, nil
}

// UpdateUser modifies an account. Nil input fields are left unchanged.
func (srv *adminService) UpdateUser(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	meta := map[string]any{}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		if *input.Phone != "" && !phonePattern.MatchString(*input.Phone) {
			return nil, errors.Wrap(domainerrors.ErrInvalidPhone, "update user")
		}
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid role")
		}
		// An admin demoting themselves would lock staff out of the panel.
		if id == actorID && *input.Role != user.Role {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot change own role")
		}
		meta["role"] = input.Role.String()
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		if id == actorID && !*input.IsActive {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot disable own account")
		}
		meta["isActive"] = *input.IsActive
		user.IsActive = *input.IsActive
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "USER_UPDATE", "User", id.String(), meta)

	return user, nil
}

// ResetPassword replaces an account's password with a staff-chosen one.
func (srv *adminService) ResetPassword(ctx context.Context, actorID, id uuid.UUID, newPassword string) error {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "reset password")
		}

		return errors.Wrap(err, "failed to find user")
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "reset password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("Password reset by staff", slog.Any("userID", id), slog.Any("actorID", actorID))
	recordAudit(ctx, srv.log(ctx), srv.auditRepo, actorID, "USER_RESET_PASSWORD", "User", id.String(), nil)

	return nil
}

// ListAuditLogs retrieves the newest audit entries.
func (srv *adminService) ListAuditLogs(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	if limit < 1 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}

	logs, err := srv.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return logs, nil
}
