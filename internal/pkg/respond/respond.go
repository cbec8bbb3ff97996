// Package respond padroniza as respostas JSON dos handlers e middlewares.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
)

// RetryAfterSeconds é enviado em respostas 503.
const RetryAfterSeconds = "1"

// JSON escreve data com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para o corpo padronizado domain.ErrorResponse.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, code, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", RetryAfterSeconds)
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:      status,
		Category:  category,
		ErrorCode: string(code),
		Message:   message,
	})
}

// Handle escreve o erro, se houver, ou data com successStatus.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	if data == nil {
		w.WriteHeader(successStatus)
		return
	}
	JSON(w, log, successStatus, data)
}

// DecodeJSON lê o corpo da requisição em v, recusando campos desconhecidos.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("Payload JSON inválido: %s", err.Error()))
	}
	return nil
}
