package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
}

// nullDate aceita time.Time, texto ou bytes, já que cada driver devolve
// colunas de data em um formato diferente
type nullDate struct {
	Time  time.Time
	Valid bool
}

func (d *nullDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		d.Time, d.Valid = v, true
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("tipo de data não suportado: %T", value)
	}
}

func (d *nullDate) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time, d.Valid = time.Time{}, false
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time, d.Valid = t, true
			return nil
		}
	}

	return fmt.Errorf("formato de data inválido: %q", s)
}

// Ptr retorna nil para datas nulas
func (d nullDate) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

func nullFloat64Ptr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}
