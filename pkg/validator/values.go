package validator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
)

// isNil reports a nil interface or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// toFloat reads any integer or floating point value, through pointers.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// toString reads strings and fmt.Stringer values.
func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case *string:
		return *x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}

// toTime reads time.Time, *time.Time and epoch milliseconds.
func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		return *x, true
	case int64:
		return time.UnixMilli(x), true
	default:
		return time.Time{}, false
	}
}

func unsupported(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// display renders v for a message, through f when set.
func display(f convert.Formatter, v any) any {
	if f == nil {
		return v
	}
	return f.FormatValue(v)
}
