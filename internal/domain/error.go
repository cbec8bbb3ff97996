package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code      int    `json:"code" example:"409"`
	Category  string `json:"category" example:"CONFLICT"`
	ErrorCode string `json:"error_code,omitempty" example:"ALREADY_FINALIZED"`
	Message   string `json:"message" example:"Conflito de estado: o pedido já foi finalizado."`
}
