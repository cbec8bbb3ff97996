// Package password guarda e confere senhas de usuários com bcrypt.
// Nenhuma senha é armazenada ou comparada em texto puro.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperror "gopedidos/internal/errors"
)

// Hasher gera e verifica hashes bcrypt. Cada chamada a Hash usa um salt aleatório novo.
type Hasher struct {
	cost int
}

// NewHasher cria um Hasher com o custo informado; fora da faixa do bcrypt usa bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash gera o hash one-way da senha.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperror.NewValidationError("A senha não pode ser vazia.")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperror.NewInternalErrorWithCode(apperror.CodeHashingFailed, "Falha ao gerar hash da senha.", err)
	}
	return string(hashed), nil
}

// Verify compara a senha com o hash em tempo constante.
// Senha incorreta devolve (false, nil); só um hash malformado devolve erro.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperror.NewInternalErrorWithCode(apperror.CodeVerificationFailed, "Hash de senha armazenado é inválido.", err)
}
