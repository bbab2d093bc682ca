package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 16

// GenerateID gera um identificador no formato <prefixo>_<nanoid>
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "_" + id, nil
}
