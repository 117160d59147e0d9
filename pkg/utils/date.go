package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseYear converte o parâmetro de ano da requisição; vazio retorna ok=false
func ParseYear(value string) (year int, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}

	year, err = strconv.Atoi(value)
	if err != nil || year < 1 || year > 9999 {
		return 0, false, fmt.Errorf("ano inválido: %q", value)
	}

	return year, true, nil
}
