package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
      parameters:
        - name: limit
          in: query
        - name: offset
          in: query
  /pets/{id}:
    get:
      responses:
        "200":
          description: ok
`

const petstoreJSON = `{
  "openapi": "3.0.3",
  "paths": {
    "/pets": {
      "get": {
        "summary": "List pets"
      }
    }
  }
}`

func TestLine_YAML(t *testing.T) {
	doc := Parse([]byte(petstoreYAML))

	tests := []struct {
		name string
		path []string
		want int
	}{
		{name: "top level key", path: []string{"info"}, want: 2},
		{name: "nested key", path: []string{"info", "version"}, want: 4},
		{name: "path with slash", path: []string{"paths", "/pets", "get"}, want: 7},
		{name: "sequence index", path: []string{"paths", "/pets", "get", "parameters", "1"}, want: 12},
		{name: "quoted key", path: []string{"paths", "/pets/{id}", "get", "responses", "200"}, want: 17},
		{name: "missing leaf falls back to parent", path: []string{"paths", "/pets", "post"}, want: 6},
		{name: "bad index falls back to parent", path: []string{"paths", "/pets", "get", "parameters", "9"}, want: 9},
		{name: "empty path", path: nil, want: FallbackLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.Line(tt.path))
		})
	}
}

func TestLine_JSON(t *testing.T) {
	doc := Parse([]byte(petstoreJSON))

	assert.Equal(t, 6, doc.Line([]string{"paths", "/pets", "get", "summary"}))
	assert.Equal(t, 2, doc.Line([]string{"openapi"}))
}

func TestLine_Unparseable(t *testing.T) {
	doc := Parse([]byte("key: [unterminated"))

	assert.Equal(t, FallbackLine, doc.Line([]string{"key"}))
}

func TestLine_Empty(t *testing.T) {
	doc := Parse(nil)

	assert.Equal(t, FallbackLine, doc.Line([]string{"paths"}))
}

func TestPointerLine(t *testing.T) {
	doc := Parse([]byte(petstoreYAML))

	assert.Equal(t, 8, doc.PointerLine("/paths/~1pets/get/summary"))
	assert.Equal(t, 8, doc.PointerLine("#/paths/~1pets/get/summary"))
	assert.Equal(t, FallbackLine, doc.PointerLine(""))
}

func TestSplitPointer(t *testing.T) {
	assert.Equal(t, []string{"paths", "/pets", "a~b"}, SplitPointer("/paths/~1pets/a~0b"))
	assert.Nil(t, SplitPointer("#"))
	assert.Nil(t, SplitPointer("/"))
}

func TestParse_SameBytesSameLines(t *testing.T) {
	first := Parse([]byte(petstoreYAML))
	second := Parse([]byte(petstoreYAML))

	path := []string{"paths", "/pets/{id}", "get"}
	assert.Equal(t, first.Line(path), second.Line(path))
}
