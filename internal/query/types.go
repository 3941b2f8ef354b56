package query

import "geomkernel/internal/geom"

// File matches the JSON schema of a query file.
type File struct {
	Presets Presets `json:"presets"`
	Queries []Query `json:"queries"`
}

// TransformSpec describes one transformation. Kind selects the constructor;
// the remaining fields are its operands.
type TransformSpec struct {
	Kind   string `json:"kind"`
	Preset string `json:"preset,omitempty"`

	Vector *geom.Vec3 `json:"vector,omitempty"`
	Point  *geom.Vec3 `json:"point,omitempty"`
	Origin *geom.Vec3 `json:"origin,omitempty"`
	XAxis  *geom.Vec3 `json:"xaxis,omitempty"`
	YAxis  *geom.Vec3 `json:"yaxis,omitempty"`
	ZAxis  *geom.Vec3 `json:"zaxis,omitempty"`
	Axis   *geom.Vec3 `json:"axis,omitempty"`

	Scale    *float64   `json:"scale,omitempty"`
	XYZ      *geom.Vec3 `json:"xyz,omitempty"` // per-axis scale factors
	Angle    *float64   `json:"angle,omitempty"`
	AngleDeg *float64   `json:"angle_deg,omitempty"`
	Array    []float64  `json:"array,omitempty"` // 16 row-major values

	// Product applies the last element first.
	Product []TransformSpec `json:"product,omitempty"`
}

// Query names one kernel operation and its operands.
type Query struct {
	Name string `json:"name"`
	Op   string `json:"op"`

	Point  *geom.Vec3  `json:"point,omitempty"`
	Target *geom.Vec3  `json:"target,omitempty"` // second point for vector_to and distance
	A      *geom.Vec3  `json:"a,omitempty"`
	B      *geom.Vec3  `json:"b,omitempty"`
	Vector *geom.Vec3  `json:"vector,omitempty"`
	Plane  *geom.Plane `json:"plane,omitempty"`
	Line   *geom.Line  `json:"line,omitempty"`

	Transform *TransformSpec `json:"transform,omitempty"`
	With      *TransformSpec `json:"with,omitempty"` // second operand of multiply and interpolate
	T         *float64       `json:"t,omitempty"`
}

// Frame is the decomposed form of a transformation.
type Frame struct {
	XAxis  geom.Vec3 `json:"xaxis"`
	YAxis  geom.Vec3 `json:"yaxis"`
	ZAxis  geom.Vec3 `json:"zaxis"`
	Origin geom.Vec3 `json:"origin"`
}

// Value is the result of a query. Exactly one field is set.
type Value struct {
	Vector *geom.Vec3           `json:"vector,omitempty"`
	Scalar *float64             `json:"scalar,omitempty"`
	Bool   *bool                `json:"bool,omitempty"`
	Matrix *geom.Transformation `json:"matrix,omitempty"`
	Frame  *Frame               `json:"frame,omitempty"`
}

func vectorValue(v geom.Vec3) Value           { return Value{Vector: &v} }
func scalarValue(f float64) Value             { return Value{Scalar: &f} }
func boolValue(b bool) Value                  { return Value{Bool: &b} }
func matrixValue(m geom.Transformation) Value { return Value{Matrix: &m} }
func frameValue(m geom.Transformation) Value {
	return Value{Frame: &Frame{XAxis: m.XAxis(), YAxis: m.YAxis(), ZAxis: m.ZAxis(), Origin: m.Origin()}}
}
