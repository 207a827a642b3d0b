package dom

import "reflect"

// Resolve normalizes an arbitrary watch target into a flat ordered slice
// of elements:
//
//   - string: resolved against doc, all matches in document order
//   - Element: a one-element slice
//   - ElementList: its elements in collection order
//   - []Element: copied as-is (nil entries dropped)
//   - any other slice or array: each entry resolved recursively, results
//     concatenated in order; nested sequences flatten with the same rule
//
// Anything else (nil, a Viewport, unsupported types) resolves to an empty
// slice; Resolve never fails. No deduplication is performed.
func Resolve(doc Document, target any) []Element {
	switch v := target.(type) {
	case nil:
		return nil

	case string:
		if doc == nil {
			return nil
		}
		return doc.Query(v)

	case Viewport:
		// The viewport is not a document element; viewport watches are
		// established through the engine's dedicated entry point.
		return nil

	case Element:
		return []Element{v}

	case ElementList:
		out := make([]Element, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if el := v.At(i); el != nil {
				out = append(out, el)
			}
		}
		return out

	case []Element:
		out := make([]Element, 0, len(v))
		for _, el := range v {
			if el != nil {
				out = append(out, el)
			}
		}
		return out
	}

	// Mixed or typed sequences ([]string, []any, ...) are flattened
	// entry by entry.
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		var out []Element
		for i := 0; i < rv.Len(); i++ {
			out = append(out, Resolve(doc, rv.Index(i).Interface())...)
		}
		return out
	}

	return nil
}
