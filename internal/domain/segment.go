package domain

import (
	"encoding/json"
	"math"
)

// Segment - отрезок для отрисовки: два конца и цвет
type Segment struct {
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Color string
}

// Drawable reports whether every coordinate is a finite number.
func (s Segment) Drawable() bool {
	for _, v := range []float64{s.X1, s.Y1, s.X2, s.Y2} {
		if !finite(v) {
			return false
		}
	}
	return true
}

// segmentJSON - не конечные координаты (NaN после lenient-разбора) кодируются как null
type segmentJSON struct {
	X1    *float64 `json:"x1"`
	Y1    *float64 `json:"y1"`
	X2    *float64 `json:"x2"`
	Y2    *float64 `json:"y2"`
	Color string   `json:"color"`
}

func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		X1:    finiteOrNil(s.X1),
		Y1:    finiteOrNil(s.Y1),
		X2:    finiteOrNil(s.X2),
		Y2:    finiteOrNil(s.Y2),
		Color: s.Color,
	})
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw segmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Segment{
		X1:    nilOrNaN(raw.X1),
		Y1:    nilOrNaN(raw.Y1),
		X2:    nilOrNaN(raw.X2),
		Y2:    nilOrNaN(raw.Y2),
		Color: raw.Color,
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrNil(v float64) *float64 {
	if !finite(v) {
		return nil
	}
	return &v
}

func nilOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
