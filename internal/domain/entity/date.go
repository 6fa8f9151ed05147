package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout es el formato calendario usado en la API, los archivos JSONL y las
// columnas date del backend remoto.
const DateLayout = "2006-01-02"

// Date es una fecha calendario sin hora. Ambos backends serializan fechas como
// "YYYY-MM-DD", así que el tipo define esa representación una sola vez.
type Date struct {
	t time.Time
}

// NewDate construye una fecha calendario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta "YYYY-MM-DD". Devuelve error si no es una fecha válida.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: se espera formato %s", s, DateLayout)
	}
	return Date{t: t}, nil
}

// Today devuelve la fecha calendario actual en UTC.
func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return NewDate(y, m, d)
}

func (d Date) String() string { return d.t.Format(DateLayout) }

// Time expone el instante subyacente (medianoche UTC).
func (d Date) Time() time.Time { return d.t }

// IsZero indica si la fecha no fue asignada.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal compara por día calendario.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
