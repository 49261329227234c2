package domcss

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/npillmayer/domcss/dom/w3cdom"
)

// Props maps CSS property names to values. Keys are CSS property names in
// camel-case or hyphenated form. Values are strings, which are used
// verbatim, or numbers of any Go numeric type.
type Props map[string]interface{}

// Apply sets the properties of props on the inline style of el and returns
// el. Numeric values are converted to lengths in px, unless the property is
// unit-less:
//
//    Apply(el, Props{"width": 1.5, "opacity": 1}) // width: 1.5px; opacity: 1
//
// nil, NaN and infinite values are skipped and leave the property unchanged.
// Properties are set in sorted key order.
func Apply[E w3cdom.Element](el E, props Props) E {
	if len(props) == 0 {
		return el
	}
	s := el.Style()
	if s == nil {
		tracer().Infof("element has no style, properties not applied")
		return el
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value, ok := styleValue(key, props[key])
		if !ok {
			tracer().P("key", key).Debugf("skipping value %v", props[key])
			continue
		}
		s.SetProperty(key, value)
	}
	return el
}

// Set sets a single property on the inline style of el, see Apply.
func Set[E w3cdom.Element](el E, prop string, value interface{}) E {
	return Apply(el, Props{prop: value})
}

// styleValue converts a property value to its string form. It returns false
// for sentinel values which must not be assigned.
func styleValue(key string, value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	if v, ok := value.(string); ok {
		return v, true
	}
	rv := reflect.ValueOf(value)
	var s string
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		if rv.Kind() == reflect.Float32 {
			s = strconv.FormatFloat(f, 'f', -1, 32)
		} else {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		}
	case reflect.String:
		return rv.String(), true
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return verbatim(value), true
	default:
		return verbatim(value), true
	}
	if !IsUnitless(key) {
		s += "px"
	}
	return s, true
}

// verbatim formats non-numeric values, preferring a String method.
func verbatim(value interface{}) string {
	if v, ok := value.(fmt.Stringer); ok {
		return v.String()
	}
	return fmt.Sprint(value)
}
