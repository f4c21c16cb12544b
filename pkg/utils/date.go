package utils

import (
	"errors"
	"strings"
	"time"
)

// Formatos aceitos para datas vindas de fora: ISO e o formato brasileiro usado pelo dashboard
const (
	isoDayLayout = "2006-01-02"
	brDayLayout  = "02/01/2006"
)

var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD or DD/MM/YYYY format")

// ParseDay converte a data recebida para o dia canônico (meia-noite UTC)
func ParseDay(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	for _, layout := range []string{isoDayLayout, brDayLayout} {
		day, err := time.ParseInLocation(layout, dateStr, time.UTC)
		if err == nil {
			return day, nil
		}
	}

	return time.Time{}, ErrInvalidDateFormat
}

// CurrentMonthRange retorna do primeiro dia do mês de ref até o próprio dia de ref
func CurrentMonthRange(ref time.Time) (time.Time, time.Time) {
	y, m, d := ref.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
