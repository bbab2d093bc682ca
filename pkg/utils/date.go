package utils

import (
	"strconv"
	"time"
)

// ParseEpochMillis converte um epoch em milissegundos para time.Time em UTC.
// String vazia retorna nil.
func ParseEpochMillis(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}

	date := time.UnixMilli(ms).UTC()
	return &date, nil
}
