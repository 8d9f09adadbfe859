package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period es la clave de un rango predefinido.
type Period string

const (
	Period1M     Period = "1m"
	Period3M     Period = "3m"
	Period6M     Period = "6m"
	Period12M    Period = "12m"
	PeriodCustom Period = "custom"
)

var (
	ErrUnknownPeriod = errors.New("analytics: período desconocido")
	ErrInvalidRange  = errors.New("analytics: rango de fechas inválido")
)

var periodMonths = map[Period]int{
	Period1M:  1,
	Period3M:  3,
	Period6M:  6,
	Period12M: 12,
}

// Formatos aceptados para created_at y para las fechas del rango personalizado.
var (
	zonedLayouts = []string{
		time.RFC3339,
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05Z07",
		"2006-01-02T15:04:05Z07",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseTimestamp interpreta una marca de tiempo ISO. Las formas sin zona se leen en loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StartOfDay 00:00:00.000 del día de t, en su zona.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 23:59:59.999 del día de t, en su zona.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// GetPresetRange devuelve [inicio del día de now - N meses, fin del día de now].
// La resta de meses sigue el desborde de calendario de AddDate (31-mar - 1 mes = 3-mar).
func GetPresetRange(period Period, now time.Time) (DateRange, error) {
	months, ok := periodMonths[period]
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	return DateRange{
		From: StartOfDay(now.AddDate(0, -months, 0)),
		To:   EndOfDay(now),
	}, nil
}

// GetCustomRange construye el rango a partir de dos fechas escritas por el usuario.
// Falla si alguna no se puede leer o si from es posterior a to.
func GetCustomRange(fromStr, toStr string, loc *time.Location) (DateRange, error) {
	from, okFrom := ParseTimestamp(fromStr, loc)
	to, okTo := ParseTimestamp(toStr, loc)
	if !okFrom || !okTo {
		return DateRange{}, fmt.Errorf("%w: fecha ilegible", ErrInvalidRange)
	}
	if from.After(to) {
		return DateRange{}, fmt.Errorf("%w: from posterior a to", ErrInvalidRange)
	}
	if loc != nil {
		from, to = from.In(loc), to.In(loc)
	}
	return DateRange{From: StartOfDay(from), To: EndOfDay(to)}, nil
}

// InDateRange prueba pertenencia inclusiva a milisegundo. Una fecha ilegible queda fuera.
func InDateRange(dateString string, r DateRange) bool {
	t, ok := ParseTimestamp(dateString, r.From.Location())
	if !ok {
		return false
	}
	return inRange(t, r)
}

func inRange(t time.Time, r DateRange) bool {
	ms := t.UnixMilli()
	return ms >= r.From.UnixMilli() && ms <= r.To.UnixMilli()
}

// MonthKey clave YYYY-MM del mes de t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel etiqueta corta para una clave YYYY-MM, ej. "Jan 2026".
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

// DateInputString formatea t como YYYY-MM-DD.
func DateInputString(t time.Time) string {
	return t.Format("2006-01-02")
}
