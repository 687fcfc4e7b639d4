package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date es una fecha de calendario sin componente horario.
// Serializa como "YYYY-MM-DD" y mapea a columnas DATE.
type Date struct {
	t time.Time
}

// NewDate construye una Date truncando cualquier componente horario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca un time.Time a su fecha de calendario en UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Today devuelve la fecha actual.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta una fecha en formato "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time expone la fecha como time.Time a medianoche UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %q", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
