package types

// AsFloat64 widens any numeric value to float64.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsInt64 narrows an integral value to int64. Floats qualify only
// when they carry no fractional part.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		if float32(int64(n)) == n {
			return int64(n), true
		}
	case float64:
		if float64(int64(n)) == n {
			return int64(n), true
		}
	}
	return 0, false
}

// IsNumeric reports whether v is any of the numeric value types.
func IsNumeric(v any) bool {
	_, ok := AsFloat64(v)
	return ok
}

// Numeric folds numbers into a running total, staying integral until
// the first fractional input arrives.
type Numeric struct {
	i       int64
	f       float64
	isFloat bool
}

// Add folds v into the total. Non-numeric values are ignored and
// reported as false.
func (n *Numeric) Add(v any) bool {
	f, ok := AsFloat64(v)
	if !ok {
		return false
	}

	if !n.isFloat {
		if i, ok := AsInt64(v); ok {
			n.i += i
			return true
		}
		n.isFloat = true
		n.f = float64(n.i)
	}
	n.f += f
	return true
}

// Value returns the running total, int64 while integral.
func (n *Numeric) Value() any {
	if n.isFloat {
		return n.f
	}
	return n.i
}

// Float returns the running total as float64.
func (n *Numeric) Float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}
