package prob

import (
	"fmt"
	"sort"
)

// Params maps latent site names to values.
type Params map[string][]float64

// Names returns the parameter names in ascending order, the canonical order
// for flattening.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Clone returns a deep copy.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for name, v := range p {
		out[name] = cloneValue(v)
	}

	return out
}

// Len returns the total number of scalar elements across all values.
func (p Params) Len() int {
	n := 0
	for _, v := range p {
		n += len(v)
	}

	return n
}

// Flatten concatenates the values of names, in that order, into one vector.
//
// Errors: ErrUnknownSite if a name has no value.
func (p Params) Flatten(names []string) ([]float64, error) {
	out := make([]float64, 0, p.Len())
	for _, name := range names {
		v, ok := p[name]
		if !ok {
			return nil, fmt.Errorf("Flatten: %q: %w", name, ErrUnknownSite)
		}
		out = append(out, v...)
	}

	return out, nil
}

// Assign is the inverse of Flatten: it returns a copy of p whose values for
// names are read consecutively from x, keeping each value's length.
//
// Errors: ErrUnknownSite if a name has no value in p; ErrShapeMismatch if x
// does not hold exactly the elements of names.
func (p Params) Assign(names []string, x []float64) (Params, error) {
	out := p.Clone()
	if out == nil {
		out = Params{}
	}
	off := 0
	for _, name := range names {
		v, ok := p[name]
		if !ok {
			return nil, fmt.Errorf("Assign: %q: %w", name, ErrUnknownSite)
		}
		if off+len(v) > len(x) {
			return nil, fmt.Errorf("Assign: vector of %d elements too short at %q: %w", len(x), name, ErrShapeMismatch)
		}
		out[name] = cloneValue(x[off : off+len(v)])
		off += len(v)
	}
	if off != len(x) {
		return nil, fmt.Errorf("Assign: %d elements left over: %w", len(x)-off, ErrShapeMismatch)
	}

	return out, nil
}

func cloneValue(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
