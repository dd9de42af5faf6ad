package handler

import (
	"net/http"
	"strconv"

	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/response"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for staff account management and the
// audit trail.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers handles the admin account listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return response.Success(c, http.StatusOK, views, "")
}

type createUserRequest struct {
	Name     string  `json:"name"`
	LastName string  `json:"lastName"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    string  `json:"phone"`
	RUN      *string `json:"run"`
	Role     string  `json:"role" validate:"required"`
}

// CreateUser handles the admin creating an account with any role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de usuario inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), actor.ID, &usecase.RegisterInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		RUN:      req.RUN,
	}, entity.Role(req.Role))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "Usuario creado")
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUser handles admin account edits, including role changes and
// disabling accounts.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de usuario inválido")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de usuario inválidos")
	}

	input := &usecase.UpdateUserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), actor.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Usuario actualizado")
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword handles an admin replacing another account's password.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Se requiere autenticación")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID de usuario inválido")
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), actor.ID, id, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña restablecida")
}

// ListAuditLogs handles the admin audit trail listing.
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	logs, err := h.uc.ListAuditLogs(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}
