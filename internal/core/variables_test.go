package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariables(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:     "two variables",
			content:  "var_1=var_1_value\nvar_2=var_2_value",
			expected: map[string]string{"var_1": "var_1_value", "var_2": "var_2_value"},
		},
		{
			name:     "cmake style tokens",
			content:  "${BEAST_INCLUDE_DIR}=/project/include\n${BEAST_SRC_DIR}=/project/src\n",
			expected: map[string]string{"${BEAST_INCLUDE_DIR}": "/project/include", "${BEAST_SRC_DIR}": "/project/src"},
		},
		{
			name:     "later duplicates overwrite earlier ones",
			content:  "A=1\nA=2",
			expected: map[string]string{"A": "2"},
		},
		{
			name:     "empty value",
			content:  "A=",
			expected: map[string]string{"A": ""},
		},
		{
			name:     "crlf line endings",
			content:  "A=1\r\nB=2\r\n",
			expected: map[string]string{"A": "1", "B": "2"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariables("vars.txt", tt.content)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Fatalf("unexpected variables (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseVariablesMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    string
	}{
		{name: "missing separator", content: "A=1\nB\n", line: "'B'"},
		{name: "missing separator first line", content: "var_1var_1_value\nvar_2=var_2_value", line: "'var_1var_1_value'"},
		{name: "too many separators", content: "A=1=2", line: "'A=1=2'"},
		{name: "blank interior line", content: "A=1\n\nB=2", line: "''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariables("vars.txt", tt.content)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.line)
			assert.Contains(t, err.Error(), "'='")
		})
	}
}
