package utils

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("data inválida, use o formato YYYY-MM-DD")

// ParseDate interpreta uma data YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &date, nil
}

// ParseDateIn interpreta YYYY-MM-DD no fuso informado. Sem data usa o
// instante now.
func ParseDateIn(dateStr string, loc *time.Location, now time.Time) (time.Time, error) {
	if dateStr == "" {
		return now.In(loc), nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}
