package domcss

import (
	"github.com/npillmayer/domcss/dom/w3cdom"
)

// Hook customizes reading a property from the inline style of an element
// which is not attached to its document. computed tells if the caller asks
// for a computed value, extra is passed through from the caller.
// A hook declines by returning false, in which case the inline style is
// read directly.
type Hook interface {
	Get(el w3cdom.Element, computed bool, extra string) (string, bool)
}

// HookFunc is an adapter to use ordinary functions as hooks.
type HookFunc func(el w3cdom.Element, computed bool, extra string) (string, bool)

// Get calls f(el, computed, extra).
func (f HookFunc) Get(el w3cdom.Element, computed bool, extra string) (string, bool) {
	return f(el, computed, extra)
}

// DefaultHooks returns the hooks used by Computed and Get. Detached
// elements have no box, therefore width and height fall back to "0px" if
// they are not set inline.
func DefaultHooks() map[string]Hook {
	return map[string]Hook{
		"width":  boxDimension("width"),
		"height": boxDimension("height"),
	}
}

func boxDimension(prop string) Hook {
	return HookFunc(func(el w3cdom.Element, computed bool, extra string) (string, bool) {
		s := el.Style()
		if s == nil {
			return "0px", true
		}
		if v := s.GetPropertyValue(prop); v != "" {
			return v, true
		}
		return "0px", true
	})
}
