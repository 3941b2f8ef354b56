package geom

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes a JSON array of exactly three numbers.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var c []float64
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("geom: decode triple: %w", err)
	}
	if len(c) != 3 {
		return fmt.Errorf("geom: decode triple %s: got %d components, want 3: %w", data, len(c), ErrComponentCount)
	}
	*v = Vec3{c[0], c[1], c[2]}
	return nil
}

// UnmarshalJSON decodes [origin, normal].
func (pl *Plane) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	o, n, err := decodePair("plane", data)
	if err != nil {
		return err
	}
	*pl = NewPlane(o, n)
	return nil
}

// UnmarshalJSON decodes [origin, direction].
func (ln *Line) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	o, d, err := decodePair("line", data)
	if err != nil {
		return err
	}
	*ln = NewLine(o, d)
	return nil
}

func decodePair(what string, data []byte) (Vec3, Vec3, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Vec3{}, Vec3{}, fmt.Errorf("geom: decode %s: %w", what, err)
	}
	if len(raw) != 2 {
		return Vec3{}, Vec3{}, fmt.Errorf("geom: decode %s %s: got %d triples, want 2: %w", what, data, len(raw), ErrComponentCount)
	}
	var pair [2]Vec3
	for i, r := range raw {
		if string(r) == "null" {
			return Vec3{}, Vec3{}, fmt.Errorf("geom: decode %s %s: triple %d is null: %w", what, data, i, ErrComponentCount)
		}
		if err := json.Unmarshal(r, &pair[i]); err != nil {
			return Vec3{}, Vec3{}, fmt.Errorf("geom: decode %s: %w", what, err)
		}
	}
	return pair[0], pair[1], nil
}
