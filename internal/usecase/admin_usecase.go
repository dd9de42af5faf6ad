package usecase

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput carries the staff-editable fields of an account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	LastName *string
	Phone    *string
	Role     *entity.Role
	IsActive *bool
}

// AdminUsecase defines the interface for staff account management and the
// audit trail.
type AdminUsecase interface {
	// ListUsers retrieves all accounts, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CreateUser lets an admin create an account with any role.
	CreateUser(ctx context.Context, actorID uuid.UUID, input *RegisterInput, role entity.Role) (*entity.User, error)

	// UpdateUser modifies an account. Changing roles and disabling accounts
	// is restricted to admins by the delivery layer.
	UpdateUser(ctx context.Context, actorID, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// ResetPassword replaces an account's password with a staff-chosen one.
	ResetPassword(ctx context.Context, actorID, id uuid.UUID, newPassword string) error

	// ListAuditLogs retrieves the newest audit entries.
	ListAuditLogs(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
