package job

import (
	"fmt"
	"strconv"
)

// ToText coerces a scalar value to its textual form. Strings, booleans,
// integers, floats and fmt.Stringers are accepted; anything else, including
// nil, is an invalid argument.
func ToText(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", invalidArgument("value is required")
	}
	return "", invalidArgument("value of type %T is not a scalar", value)
}
