package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Key encodes a value into a canonical string so that equal values
// (regardless of document key order or numeric width) produce equal
// keys. Group buckets and set membership are keyed with it.
func Key(v any) string {
	sb := &strings.Builder{}
	appendKey(sb, v)
	return sb.String()
}

func appendKey(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		sb.WriteString("z")
	case bool:
		sb.WriteString("b:")
		sb.WriteString(strconv.FormatBool(val))
	case string:
		sb.WriteString("s:")
		sb.WriteString(strconv.Quote(val))
	case time.Time:
		sb.WriteString("t:")
		sb.WriteString(val.UTC().Format(time.RFC3339Nano))
	case []any:
		sb.WriteString("a:[")
		for i, el := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			appendKey(sb, el)
		}
		sb.WriteByte(']')
	case Document:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		sb.WriteString("d:{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte('=')
			appendKey(sb, val[k])
		}
		sb.WriteByte('}')
	default:
		if f, ok := AsFloat64(v); ok {
			sb.WriteString("n:")
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return
		}
		sb.WriteString(fmt.Sprintf("o:%[1]T:%[1]v", v))
	}
}
