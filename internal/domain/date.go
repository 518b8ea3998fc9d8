package domain

import (
	"fmt"
	"time"
)

// Date é uma data civil (sem horário), serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	parsed, err := time.Parse(`"`+time.DateOnly+`"`, string(data))
	if err != nil {
		return err
	}

	*d = NewDate(parsed)
	return nil
}

// MarshalCSV implementa gocsv.TypeMarshaller
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}
