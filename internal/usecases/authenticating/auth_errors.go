package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// AuthError carrega o código da API e a mensagem que pode ser exibida ao
// cliente. Cause guarda o erro da biblioteca (jwt, bcrypt) só para os logs.
type AuthError struct {
	Err     error
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica falha causada pelo que o usuário enviou no login
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingRequiredData)
}

func NewAuthError(baseErr error, code string, message string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}

// withCause anexa o erro de origem sem expô-lo na mensagem
func (e *AuthError) withCause(cause error) *AuthError {
	e.Cause = cause
	return e
}
