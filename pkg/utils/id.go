package utils

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	mappingIDPrefix   = "map_"
	mappingIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	mappingIDLength   = 12
)

// NewMappingID gera o ID de um vínculo empresa/conta, ex: map_3k9x0q1z7a2b
func NewMappingID() (string, error) {
	id, err := gonanoid.Generate(mappingIDAlphabet, mappingIDLength)
	if err != nil {
		return "", err
	}

	return mappingIDPrefix + id, nil
}

func IsMappingID(id string) bool {
	suffix, ok := strings.CutPrefix(id, mappingIDPrefix)
	if !ok || len(suffix) != mappingIDLength {
		return false
	}

	return strings.Trim(suffix, mappingIDAlphabet) == ""
}
