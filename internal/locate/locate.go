// Package locate maps structural locations inside an API description back to
// line numbers in the text that was uploaded.
package locate

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackLine is reported when a location cannot be resolved at all.
const FallbackLine = 1

// Document is a parsed YAML or JSON document. It is parsed once and can
// resolve any number of locations against the same bytes.
type Document struct {
	root *yaml.Node
}

func Parse(content []byte) *Document {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return &Document{}
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return &Document{root: doc.Content[0]}
	}
	return &Document{}
}

// Line returns the 1-based line of the deepest node reachable along path.
// Segments that do not exist stop the walk at their parent.
func (d *Document) Line(path []string) int {
	if d.root == nil || len(path) == 0 {
		return FallbackLine
	}

	node := d.root
	line := node.Line
	for _, seg := range path {
		next, at, ok := child(node, seg)
		if !ok {
			break
		}
		node, line = next, at
	}

	if line < 1 {
		return FallbackLine
	}
	return line
}

// PointerLine resolves an RFC 6901 JSON pointer, with or without a leading '#'.
func (d *Document) PointerLine(pointer string) int {
	return d.Line(SplitPointer(pointer))
}

func SplitPointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return parts
}

func child(node *yaml.Node, seg string) (*yaml.Node, int, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Value == seg {
				return node.Content[i+1], key.Line, true
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(node.Content) {
			return nil, 0, false
		}
		item := node.Content[idx]
		return item, item.Line, true
	}
	return nil, 0, false
}
