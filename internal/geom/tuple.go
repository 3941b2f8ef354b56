package geom

import "fmt"

// Coord is one Tuple coordinate: either a number or an opaque value stored as given.
type Coord struct {
	val     any
	num     float64
	numeric bool
}

// Num returns a numeric coordinate.
func Num(f float64) Coord {
	return Coord{val: f, num: f, numeric: true}
}

// CoordOf wraps any value. Go numeric kinds become numeric coordinates;
// everything else, including nil, is kept opaque.
func CoordOf(v any) Coord {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return Coord{val: v}
	}
	return Coord{val: v, num: f, numeric: true}
}

// Value returns exactly what was stored.
func (c Coord) Value() any { return c.val }

// Float returns the numeric value and true, or 0 and false for an opaque coordinate.
func (c Coord) Float() (float64, bool) { return c.num, c.numeric }

func (c Coord) IsNumeric() bool { return c.numeric }

// Tuple is a permissive 3-coordinate container. Setters accept any value and
// never validate; geometric operations require every coordinate to be numeric.
//
// A Tuple must not be read while one of its pointer methods mutates it.
type Tuple [3]Coord

// NewTuple builds a numeric Tuple.
func NewTuple(x, y, z float64) Tuple {
	return Tuple{Num(x), Num(y), Num(z)}
}

// TupleOf builds a Tuple from arbitrary values.
func TupleOf(x, y, z any) Tuple {
	return Tuple{CoordOf(x), CoordOf(y), CoordOf(z)}
}

// TupleFromVec3 copies a numeric triple into a Tuple.
func TupleFromVec3(v Vec3) Tuple {
	return NewTuple(v[0], v[1], v[2])
}

func (t Tuple) X() any { return t[0].val }
func (t Tuple) Y() any { return t[1].val }
func (t Tuple) Z() any { return t[2].val }

// SetX stores v verbatim as the x coordinate.
func (t *Tuple) SetX(v any) *Tuple {
	t[0] = CoordOf(v)
	return t
}

// SetY stores v verbatim as the y coordinate.
func (t *Tuple) SetY(v any) *Tuple {
	t[1] = CoordOf(v)
	return t
}

// SetZ stores v verbatim as the z coordinate.
func (t *Tuple) SetZ(v any) *Tuple {
	t[2] = CoordOf(v)
	return t
}

var axisNames = [3]string{"x", "y", "z"}

// Vec3 converts t to a numeric triple, failing on the first opaque coordinate.
func (t Tuple) Vec3() (Vec3, error) {
	var v Vec3
	for i, c := range t {
		f, ok := c.Float()
		if !ok {
			return Vec3{}, fmt.Errorf("geom: tuple %s=%v (%T): %w", axisNames[i], c.val, c.val, ErrNotNumeric)
		}
		v[i] = f
	}
	return v, nil
}

// update applies fn to the numeric form of t and stores the result.
// t is untouched when a coordinate is opaque.
func (t *Tuple) update(fn func(*Vec3)) error {
	v, err := t.Vec3()
	if err != nil {
		return err
	}
	fn(&v)
	*t = TupleFromVec3(v)
	return nil
}

// Offset moves t by d in place.
func (t *Tuple) Offset(d Vec3) error {
	return t.update(func(v *Vec3) { v.Offset(d) })
}

// Transform applies m to t as a point, in place.
func (t *Tuple) Transform(m Transformation) error {
	return t.update(func(v *Vec3) { v.Transform(m) })
}

// Normalize scales t to unit length in place. A zero tuple stays zero.
func (t *Tuple) Normalize() error {
	return t.update(func(v *Vec3) { v.Normalize() })
}
