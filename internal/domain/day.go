package domain

import "time"

// FormatDay formata a data no formato canônico de dia usado internamente
func FormatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

// TruncateDay descarta o horário mantendo o dia do calendário em UTC
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
