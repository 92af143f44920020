package types

import "strings"

// Document is a single JSON-shaped document flowing through a pipeline.
// Values are the types produced by encoding/json: nil, bool, float64,
// string, []any and map[string]any (which is a Document itself).
type Document = map[string]any

// Get resolves a dotted path ("a.b.c") against a document. A missing
// segment yields nil.
func Get(doc Document, path string) any {
	var cur any = doc
	for _, seg := range strings.Split(path, ".") {
		sub, ok := cur.(Document)
		if !ok {
			return nil
		}
		cur = sub[seg]
	}
	return cur
}
