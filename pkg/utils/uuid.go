package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para tokens e lotes de importação
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
