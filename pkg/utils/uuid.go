package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const referenceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewReference gera um identificador curto no formato <prefix>-<10 caracteres>,
// usado para rastrear notificações enviadas
func NewReference(prefix string) (string, error) {
	id, err := gonanoid.Generate(referenceAlphabet, 10)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}
