package document

// Format identifies the encoding of a configuration document on disk.
type Format string

const (
	FormatJSON Format = "json" // JSON or JSON5, the default
	FormatYAML Format = "yaml"
)

// Document is a parsed agent configuration: an arbitrarily nested tree of
// string-keyed mappings, arrays and scalars. Nothing about its shape is
// assumed in advance.
type Document map[string]any

// Get returns the value at the given key path, or nil when the path or any
// of its ancestors is absent or not a mapping.
func (d Document) Get(path ...string) any {
	return Dig(map[string]any(d), path...)
}

// Dig walks v along path one mapping key at a time. It never fails: a
// missing key, a nil ancestor or a non-mapping ancestor yields nil.
func Dig(v any, path ...string) any {
	cur := v
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}
