package query

import (
	"fmt"

	"geomkernel/internal/geom"
)

// Evaluate runs one query against the kernel.
func (p Presets) Evaluate(q Query) (Value, error) {
	v, err := p.evaluate(q)
	if err != nil {
		return Value{}, fmt.Errorf("query %s (%s): %w", q.Name, q.Op, err)
	}
	return v, nil
}

func (p Presets) evaluate(q Query) (Value, error) {
	switch q.Op {
	case "cross", "dot":
		if q.A == nil || q.B == nil {
			return Value{}, missing(q.Op, "a/b")
		}
		if q.Op == "cross" {
			return vectorValue(q.A.Cross(*q.B)), nil
		}
		return scalarValue(q.A.Dot(*q.B)), nil

	case "angle":
		if q.A == nil || q.B == nil {
			return Value{}, missing(q.Op, "a/b")
		}
		return scalarValue(geom.Rad2Deg(q.A.AngleBetween(*q.B))), nil

	case "normalize":
		if q.Vector == nil {
			return Value{}, missing(q.Op, "vector")
		}
		v := *q.Vector
		return vectorValue(*v.Normalize()), nil

	case "offset":
		if q.Point == nil || q.Vector == nil {
			return Value{}, missing(q.Op, "point/vector")
		}
		pt := *q.Point
		return vectorValue(*pt.Offset(*q.Vector)), nil

	case "vector_to", "distance":
		if q.Point == nil || q.Target == nil {
			return Value{}, missing(q.Op, "point/target")
		}
		if q.Op == "vector_to" {
			return vectorValue(q.Point.VectorTo(*q.Target)), nil
		}
		return scalarValue(q.Point.Distance(*q.Target)), nil

	case "project_to_plane", "distance_to_plane", "on_plane":
		if q.Point == nil || q.Plane == nil {
			return Value{}, missing(q.Op, "point/plane")
		}
		switch q.Op {
		case "project_to_plane":
			v, err := q.Point.ProjectToPlane(*q.Plane)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(v), nil
		case "distance_to_plane":
			return scalarValue(q.Point.DistanceToPlane(*q.Plane)), nil
		}
		return boolValue(q.Point.OnPlane(*q.Plane)), nil

	case "project_to_line", "distance_to_line", "on_line":
		if q.Point == nil || q.Line == nil {
			return Value{}, missing(q.Op, "point/line")
		}
		switch q.Op {
		case "project_to_line":
			v, err := q.Point.ProjectToLine(*q.Line)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(v), nil
		case "distance_to_line":
			return scalarValue(q.Point.DistanceToLine(*q.Line)), nil
		}
		return boolValue(q.Point.OnLine(*q.Line)), nil
	}

	// The remaining operations all take a transformation.
	m, err := p.transform(q.Op, "transform", q.Transform)
	if err != nil {
		return Value{}, err
	}

	switch q.Op {
	case "transform":
		if q.Point == nil {
			return Value{}, missing(q.Op, "point")
		}
		pt := *q.Point
		return vectorValue(*pt.Transform(m)), nil

	case "transform_vector":
		if q.Vector == nil {
			return Value{}, missing(q.Op, "vector")
		}
		return vectorValue(m.MulVector(*q.Vector)), nil

	case "build":
		return matrixValue(m), nil

	case "inverse":
		inv, err := m.Inverse()
		if err != nil {
			return Value{}, err
		}
		return matrixValue(inv), nil

	case "identity":
		return boolValue(m.IsIdentity()), nil

	case "axes_of":
		return frameValue(m), nil

	case "multiply", "interpolate":
		with, err := p.transform(q.Op, "with", q.With)
		if err != nil {
			return Value{}, err
		}
		if q.Op == "multiply" {
			return matrixValue(m.Mul(with)), nil
		}
		if q.T == nil {
			return Value{}, missing(q.Op, "t")
		}
		return matrixValue(geom.Interpolate(m, with, *q.T)), nil
	}

	return Value{}, fmt.Errorf("%w %q", ErrUnknownOp, q.Op)
}

func (p Presets) transform(op, field string, spec *TransformSpec) (geom.Transformation, error) {
	if spec == nil {
		if !knownTransformOp(op) {
			return geom.Transformation{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
		}
		return geom.Transformation{}, missing(op, field)
	}
	return p.Build(*spec)
}

func knownTransformOp(op string) bool {
	switch op {
	case "transform", "transform_vector", "build", "inverse", "identity", "axes_of", "multiply", "interpolate":
		return true
	}
	return false
}
