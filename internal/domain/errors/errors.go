package errors

import (
	"net/http"

	"github.com/sebvsnk/Base-E-commerce/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business code, so copies produced by WithDetails
// still compare equal to their predefined base error under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Spanish, matching the
// storefront locale.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"El correo ya está registrado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"La cuenta está deshabilitada",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Teléfono inválido (debe ser +56 seguido de 9 dígitos)",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error procesando la contraseña",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrProductHasSalesHistory = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_HAS_SALES_HISTORY",
		"No se puede eliminar el producto porque tiene historial de ventas. Se recomienda desactivarlo en su lugar.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoría no encontrada",
		"",
	)

	ErrCategoryConflict = NewBaseError(
		http.StatusConflict,
		"CATEGORY_CONFLICT",
		"El nombre o slug de la categoría ya existe",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"No se puede eliminar una categoría con productos asociados",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Orden no encontrada",
		"",
	)

	ErrInvalidProducts = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCTS",
		"Productos inválidos",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Stock insuficiente",
		"",
	)

	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ALREADY_PAID",
		"Las órdenes pagadas no se pueden cancelar",
		"",
	)

	ErrOrderCancelled = NewBaseError(
		http.StatusBadRequest,
		"ORDER_CANCELLED",
		"Las órdenes canceladas no pueden cambiar de estado",
		"",
	)

	// Guest checkout errors
	ErrOtpNotFound = NewBaseError(
		http.StatusNotFound,
		"OTP_NOT_FOUND",
		"No hay código activo",
		"",
	)

	ErrOtpExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"Código expirado",
		"",
	)

	ErrOtpInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OTP_INVALID",
		"Código incorrecto",
		"",
	)

	ErrOtpTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_TOO_MANY_ATTEMPTS",
		"Demasiados intentos. Reenvía un código.",
		"",
	)

	ErrOtpResendCooldown = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_RESEND_COOLDOWN",
		"Espera antes de reenviar el código",
		"",
	)

	ErrGuestTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"GUEST_TOKEN_INVALID",
		"Token de invitado inválido o expirado",
		"",
	)

	// Payment-related errors
	ErrPaymentCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_CREATE_FAILED",
		"Error creando la transacción Webpay",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Dirección no encontrada",
		"",
	)

	// Media-related errors
	ErrMediaAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_ASSET_NOT_FOUND",
		"Recurso multimedia no encontrado",
		"",
	)

	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"Error subiendo la imagen",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error ejecutando la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
