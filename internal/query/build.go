package query

import (
	"errors"
	"fmt"

	"geomkernel/internal/geom"
)

var (
	// ErrUnknownOp reports a query or transform kind this package does not know.
	ErrUnknownOp = errors.New("query: unknown operation")
	// ErrMissingOperand reports a query lacking a field its operation needs.
	ErrMissingOperand = errors.New("query: missing operand")
	// ErrUnknownPreset reports a reference to an undefined or cyclic preset.
	ErrUnknownPreset = errors.New("query: unknown preset")
)

// Presets maps names to reusable transform specs.
type Presets map[string]TransformSpec

func missing(what, field string) error {
	return fmt.Errorf("%s: %w %q", what, ErrMissingOperand, field)
}

// Build constructs the transformation described by spec.
func (p Presets) Build(spec TransformSpec) (geom.Transformation, error) {
	return p.build(spec, map[string]bool{})
}

func (p Presets) build(spec TransformSpec, seen map[string]bool) (geom.Transformation, error) {
	kind := spec.Kind
	if kind == "" && spec.Preset != "" {
		kind = "preset"
	}

	switch kind {
	case "identity":
		return geom.Identity(), nil

	case "translation":
		if spec.Vector == nil {
			return geom.Transformation{}, missing(kind, "vector")
		}
		return geom.Translation(*spec.Vector), nil

	case "point":
		if spec.Point == nil {
			return geom.Transformation{}, missing(kind, "point")
		}
		return geom.FromPoint(*spec.Point), nil

	case "scaling":
		switch {
		case spec.Scale != nil && spec.Point != nil:
			return geom.ScalingAbout(*spec.Point, *spec.Scale), nil
		case spec.Scale != nil:
			return geom.Scaling(*spec.Scale), nil
		case spec.XYZ != nil && spec.Point != nil:
			return geom.ScalingAboutXYZ(*spec.Point, spec.XYZ[0], spec.XYZ[1], spec.XYZ[2]), nil
		case spec.XYZ != nil:
			return geom.ScalingXYZ(spec.XYZ[0], spec.XYZ[1], spec.XYZ[2]), nil
		}
		return geom.Transformation{}, missing(kind, "scale")

	case "rotation":
		if spec.Axis == nil {
			return geom.Transformation{}, missing(kind, "axis")
		}
		var angle float64
		switch {
		case spec.Angle != nil:
			angle = *spec.Angle
		case spec.AngleDeg != nil:
			angle = geom.Deg2Rad(*spec.AngleDeg)
		default:
			return geom.Transformation{}, missing(kind, "angle")
		}
		var pivot geom.Vec3
		if spec.Point != nil {
			pivot = *spec.Point
		}
		return geom.Rotation(pivot, *spec.Axis, angle)

	case "axes":
		if spec.XAxis == nil || spec.YAxis == nil || spec.ZAxis == nil {
			return geom.Transformation{}, missing(kind, "xaxis/yaxis/zaxis")
		}
		return geom.Axes(orZero(spec.Origin), *spec.XAxis, *spec.YAxis, *spec.ZAxis)

	case "origin_z":
		if spec.ZAxis == nil {
			return geom.Transformation{}, missing(kind, "zaxis")
		}
		return geom.FromOriginZAxis(orZero(spec.Origin), *spec.ZAxis)

	case "origin_xy":
		if spec.XAxis == nil || spec.YAxis == nil {
			return geom.Transformation{}, missing(kind, "xaxis/yaxis")
		}
		return geom.FromOriginXY(orZero(spec.Origin), *spec.XAxis, *spec.YAxis)

	case "array":
		return geom.FromSlice(spec.Array)

	case "product":
		if len(spec.Product) == 0 {
			return geom.Transformation{}, missing(kind, "product")
		}
		m := geom.Identity()
		for _, s := range spec.Product {
			f, err := p.build(s, seen)
			if err != nil {
				return geom.Transformation{}, err
			}
			m = m.Mul(f)
		}
		return m, nil

	case "preset":
		def, ok := p[spec.Preset]
		if !ok || seen[spec.Preset] {
			return geom.Transformation{}, fmt.Errorf("%w %q", ErrUnknownPreset, spec.Preset)
		}
		seen[spec.Preset] = true
		defer delete(seen, spec.Preset)
		return p.build(def, seen)
	}

	return geom.Transformation{}, fmt.Errorf("%w: transform kind %q", ErrUnknownOp, spec.Kind)
}

func orZero(v *geom.Vec3) geom.Vec3 {
	if v == nil {
		return geom.Vec3{}
	}
	return *v
}
