package pronunciation

import "fmt"

// DefaultVariant is the variant label selected when a single pronunciation
// is needed for a word with several variants.
const DefaultVariant = "DEFAULT"

// Value is the pronunciation of a word. It is either a Scalar or Variants.
type Value interface {
	isValue()
}

// Scalar is a single pronunciation. Values that were not JSON strings in the
// source (numbers, booleans, null, arrays) keep their literal JSON text so
// they can be written back unchanged.
type Scalar struct {
	Text string
	raw  string
}

// Text returns a Scalar holding a phonemic string.
func Text(s string) Scalar {
	return Scalar{Text: s}
}

// Literal returns a Scalar holding a non-string JSON literal such as null or 0.
func Literal(raw string) Scalar {
	return Scalar{raw: raw}
}

// IsText reports whether the scalar is a JSON string.
func (s Scalar) IsText() bool {
	return s.raw == ""
}

// Raw returns the JSON literal of a non-string scalar.
func (s Scalar) Raw() string {
	return s.raw
}

func (Scalar) isValue() {}

// Variant is one labelled pronunciation. Missing is set when the source
// carried null for the pronunciation.
type Variant struct {
	Label         string
	Pronunciation string
	Missing       bool
}

// Variants holds the labelled pronunciations of a word in source order.
type Variants []Variant

func (Variants) isValue() {}

// Lookup returns the pronunciation stored under label.
func (vs Variants) Lookup(label string) (Variant, bool) {
	for _, v := range vs {
		if v.Label == label {
			return v, true
		}
	}
	return Variant{}, false
}

// Resolve reduces a value to one phonemic string. Variants resolve to the
// DEFAULT entry; there is no fallback to another label.
func Resolve(v Value) (string, error) {
	switch v := v.(type) {
	case Scalar:
		if !v.IsText() {
			return "", fmt.Errorf("%w: pronunciation %s is not a string", ErrSchema, v.raw)
		}
		return v.Text, nil
	case Variants:
		def, ok := v.Lookup(DefaultVariant)
		if !ok {
			return "", fmt.Errorf("%w: no %q variant", ErrSchema, DefaultVariant)
		}
		if def.Missing {
			return "", fmt.Errorf("%w: %q variant is null", ErrSchema, DefaultVariant)
		}
		return def.Pronunciation, nil
	default:
		return "", fmt.Errorf("%w: unsupported value %T", ErrSchema, v)
	}
}

// Equal reports whether two values carry the same pronunciations.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Scalar:
		bs, ok := b.(Scalar)
		return ok && a == bs
	case Variants:
		bv, ok := b.(Variants)
		if !ok || len(a) != len(bv) {
			return false
		}
		for i := range a {
			if a[i] != bv[i] {
				return false
			}
		}
		return true
	}
	return false
}
