package errors

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do GoPedidos.
// Ela permite que o código externo (Handler) acesse a Categoria, o Código e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	ErrCode() Code    // Motivo específico (e.g., USER_ALREADY_EXISTS); vazio se genérico
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// Code identifica o motivo específico de uma falha dentro de uma categoria.
type Code string

const (
	CodeUserAlreadyExists  Code = "USER_ALREADY_EXISTS"
	CodeUserNotFound       Code = "USER_NOT_FOUND"
	CodeBadCredentials     Code = "BAD_CREDENTIALS"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeTokenInvalid       Code = "TOKEN_INVALID"
	CodeProductNotFound    Code = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound      Code = "ORDER_NOT_FOUND"
	CodeCustomerNotFound   Code = "CUSTOMER_NOT_FOUND"
	CodeInsufficientStock  Code = "INSUFFICIENT_STOCK"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeAlreadyFinalized   Code = "ALREADY_FINALIZED"
	CodeHashingFailed      Code = "HASHING_FAILED"
	CodeVerificationFailed Code = "VERIFICATION_FAILED"
	CodeSigningFailed      Code = "SIGNING_FAILED"
	CodeStoreUnavailable   Code = "STORE_UNAVAILABLE"
)

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg  string
	Code Code
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) ErrCode() Code    { return e.Code }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewInvalidTransitionError é usado quando o estado pedido para um pedido não é um destino válido.
func NewInvalidTransitionError(msg string) AppError {
	return &ValidationError{Msg: msg, Code: CodeInvalidTransition}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg  string
	Code Code
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) ErrCode() Code    { return e.Code }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// NewNotFoundErrorWithCode cria um NotFoundError com motivo específico (e.g., PRODUCT_NOT_FOUND).
func NewNotFoundErrorWithCode(code Code, msg string) AppError {
	return &NotFoundError{Msg: msg, Code: code}
}

// ConflictError representa um conflito na regra de negócio (recurso duplicado, transição concorrente).
type ConflictError struct {
	Msg  string
	Code Code
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) ErrCode() Code    { return e.Code }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// NewConflictErrorWithCode cria um ConflictError com motivo específico (e.g., ALREADY_FINALIZED).
func NewConflictErrorWithCode(code Code, msg string) AppError {
	return &ConflictError{Msg: msg, Code: code}
}

// UnauthorizedError representa falhas de autenticação (credenciais, token inválido ou expirado).
type UnauthorizedError struct {
	Msg  string
	Code Code
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) ErrCode() Code    { return e.Code }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// NewUnauthorizedErrorWithCode cria um UnauthorizedError com motivo específico.
func NewUnauthorizedErrorWithCode(code Code, msg string) AppError {
	return &UnauthorizedError{Msg: msg, Code: code}
}

// ForbiddenError indica um usuário autenticado sem o papel exigido.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) ErrCode() Code    { return "" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um erro de autorização.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// InsufficientStockError indica que um ajuste deixaria o estoque de um produto negativo.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para o produto %s: disponível %d, solicitado %d", e.ProductID, e.Available, e.Requested)
}
func (e *InsufficientStockError) Category() string { return "INSUFFICIENT_STOCK" }
func (e *InsufficientStockError) ErrCode() Code    { return CodeInsufficientStock }
func (e *InsufficientStockError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *InsufficientStockError) Unwrap() error    { return nil }

// NewInsufficientStockError cria um erro de estoque insuficiente.
func NewInsufficientStockError(productID string, available, requested int) AppError {
	return &InsufficientStockError{ProductID: productID, Available: available, Requested: requested}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// UnavailableError representa uma falha transitória do armazenamento (timeout, conexão perdida).
// O chamador pode repetir a operação com backoff.
type UnavailableError struct {
	Msg string
	Err error
}

func (e *UnavailableError) Error() string    { return fmt.Sprintf("Serviço indisponível: %s", e.Msg) }
func (e *UnavailableError) Category() string { return "STORE_UNAVAILABLE" }
func (e *UnavailableError) ErrCode() Code    { return CodeStoreUnavailable }
func (e *UnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable } // 503
func (e *UnavailableError) Unwrap() error    { return e.Err }

// Retryable sinaliza ao Handler que a requisição pode ser repetida.
func (e *UnavailableError) Retryable() bool { return true }

// NewUnavailableError cria um erro de indisponibilidade do armazenamento.
func NewUnavailableError(msg string, err error) AppError {
	return &UnavailableError{Msg: msg, Err: err}
}

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg  string
	Code Code
	Err  error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) ErrCode() Code    { return e.Code }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewInternalErrorWithCode cria um InternalError com motivo específico (e.g., HASHING_FAILED).
func NewInternalErrorWithCode(code Code, msg string, err error) AppError {
	return &InternalError{Msg: msg, Code: code, Err: err}
}

// NewDBError traduz uma falha do driver em InternalError ou, se for transitória, em UnavailableError.
func NewDBError(msg string, err error) AppError {
	if IsTransient(err) {
		return NewUnavailableError(fmt.Sprintf("%s (DB)", msg), err)
	}
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// IsTransient reconhece timeouts, cancelamentos e conexões perdidas com o armazenamento.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr)
}

// HasCode verifica se algum erro da cadeia é um AppError com o código informado.
func HasCode(err error, code Code) bool {
	for err != nil {
		if appErr, ok := err.(AppError); ok && appErr.ErrCode() == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria, código específico e mensagem.
func MapToHTTPStatus(err error) (int, string, Code, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		// O erro é tipado (ValidationError, NotFoundError, etc.)
		if appErr.HTTPStatus() >= http.StatusInternalServerError && appErr.Category() == "INTERNAL_ERROR" {
			// Não expõe detalhes do driver ao cliente.
			return appErr.HTTPStatus(), appErr.Category(), appErr.ErrCode(), "Ocorreu um erro interno."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.ErrCode(), appErr.Error()
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "", "Ocorreu um erro inesperado."
}
