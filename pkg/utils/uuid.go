package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID gera o identificador das entidades do dashboard
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// MustGenerateID é usado apenas pelo seed, onde falhar é aceitável
func MustGenerateID() string {
	id, err := GenerateID()
	if err != nil {
		panic(err)
	}
	return id
}
