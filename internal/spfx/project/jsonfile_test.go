package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripSingleLineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no comments",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "full line comment",
			input:    "{\n  // comment\n  \"a\": 1\n}",
			expected: "{\n  \n  \"a\": 1\n}",
		},
		{
			name:     "trailing comment",
			input:    "{\"a\": 1 // one\n}",
			expected: "{\"a\": 1 \n}",
		},
		{
			name:     "url inside string is kept",
			input:    `{"$schema": "https://dev.office.com/json-schemas/spfx-build/config.2.0.schema.json"}`,
			expected: `{"$schema": "https://dev.office.com/json-schemas/spfx-build/config.2.0.schema.json"}`,
		},
		{
			name:     "escaped quote inside string",
			input:    "{\"a\": \"say \\\"//hi\\\"\" // c\n}",
			expected: "{\"a\": \"say \\\"//hi\\\"\" \n}",
		},
		{
			name:     "comment at end of input",
			input:    "{}// done",
			expected: "{}",
		},
		{
			name:     "byte order mark",
			input:    "\xEF\xBB\xBF{}",
			expected: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(StripSingleLineComments([]byte(tt.input))))
		})
	}
}

func TestParseJSONFile(t *testing.T) {
	doc, err := ParseJSONFile(TsConfigJSONPath, []byte("{\n// c\n\"compilerOptions\": {\"lib\": [\"es5\", \"dom\"]}}"))
	require.NoError(t, err)

	lib, ok := doc.Lookup("compilerOptions", "lib")
	assert.True(t, ok)
	assert.Equal(t, []interface{}{"es5", "dom"}, lib)

	_, ok = doc.Lookup("compilerOptions", "lib", "deeper")
	assert.False(t, ok)
	assert.Equal(t, "", doc.String("compilerOptions", "outDir"))

	_, err = ParseJSONFile(TsConfigJSONPath, []byte(`[]`))
	assert.Error(t, err)
	_, err = ParseJSONFile(TsConfigJSONPath, []byte(`null`))
	assert.EqualError(t, err, "failed to parse ./tsconfig.json: top level value is not an object")

	var missing *JSONFile
	_, ok = missing.Lookup("a")
	assert.False(t, ok)
}
