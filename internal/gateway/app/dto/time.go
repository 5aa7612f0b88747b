package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"studymate/internal/shared"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ErrInvalidDate возвращается для даты в неизвестном формате.
var ErrInvalidDate = fmt.Errorf("%w: date must be RFC 3339 or YYYY-MM-DD[THH:MM[:SS]]", shared.ErrValidation)

// Date принимает RFC 3339 и локальные форматы без зоны; последние трактуются как UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return ErrInvalidDate
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
