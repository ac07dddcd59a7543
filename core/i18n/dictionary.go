package i18n

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Dictionary is a nested mapping from key segments to display strings.
// Leaves are strings or numbers; every other node is a record.
type Dictionary map[string]any

// Lookup walks dict along the dot-separated key and returns the leaf as a string.
// It fails closed: a missing segment, a non-record intermediate node or a
// structured leaf all report false.
func Lookup(dict Dictionary, key string) (string, bool) {
	if dict == nil {
		return "", false
	}

	var node any = dict
	for segment := range strings.SplitSeq(key, ".") {
		next, ok := child(node, segment)
		if !ok {
			return "", false
		}
		node = next
	}

	return leafString(node)
}

// child returns the value stored under segment when node is a record.
func child(node any, segment string) (any, bool) {
	switch record := node.(type) {
	case Dictionary:
		v, ok := record[segment]
		return v, ok
	case map[string]any:
		v, ok := record[segment]
		return v, ok
	case map[string]string:
		v, ok := record[segment]
		return v, ok
	default:
		return nil, false
	}
}

// leafString converts a string or numeric leaf into its display form.
// Numbers render in their shortest form: 3 -> "3", 2.5 -> "2.5".
func leafString(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}
