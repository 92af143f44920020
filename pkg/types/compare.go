package types

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Type ranks establishing a total order across value types, so that
// values of different types always compare consistently. Within one
// rank values compare by their natural order.
const (
	rankNull = iota
	rankNumber
	rankString
	rankDocument
	rankArray
	rankBool
	rankTime
	rankOther
)

func rankOf(v any) int {
	switch v.(type) {
	case nil:
		return rankNull
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return rankNumber
	case string:
		return rankString
	case Document:
		return rankDocument
	case []any:
		return rankArray
	case bool:
		return rankBool
	case time.Time:
		return rankTime
	default:
		return rankOther
	}
}

// Compare orders any two pipeline values: -1, 0 or 1. Values of
// different types order by type rank, values of the same type by
// value. Documents compare field by field in key order, arrays
// element by element.
func Compare(a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb {
		return cmpOrdered(ra, rb)
	}

	switch ra {
	case rankNull:
		return 0
	case rankNumber:
		fa, _ := AsFloat64(a)
		fb, _ := AsFloat64(b)
		return cmpOrdered(fa, fb)
	case rankString:
		return cmpOrdered(a.(string), b.(string))
	case rankDocument:
		return cmpOrdered(Key(a), Key(b))
	case rankArray:
		aa, ab := a.([]any), b.([]any)
		for i := 0; i < len(aa) && i < len(ab); i++ {
			if c := Compare(aa[i], ab[i]); c != 0 {
				return c
			}
		}
		return cmpOrdered(len(aa), len(ab))
	case rankBool:
		ba, bb := a.(bool), b.(bool)
		if ba == bb {
			return 0
		} else if !ba {
			return -1
		}
		return 1
	case rankTime:
		ta, tb := a.(time.Time), b.(time.Time)
		if ta.Equal(tb) {
			return 0
		} else if ta.Before(tb) {
			return -1
		}
		return 1
	default:
		return cmpOrdered(Key(a), Key(b))
	}
}

func cmpOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
