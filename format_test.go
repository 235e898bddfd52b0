package streams

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_Format(t *testing.T) {
	tests := []struct {
		name  string
		spec  []string
		input []string
		want  string
	}{
		{
			name:  "default template",
			input: []string{"0", "1", "2"},
			want:  "<0, 1, 2>",
		},
		{
			name:  "custom template",
			spec:  []string{"[{}(; )]"},
			input: []string{"a", "b"},
			want:  "[a; b]",
		},
		{
			name:  "repr elements",
			spec:  []string{DefaultReprFormat},
			input: []string{"a", "b"},
			want:  `<"a", "b">`,
		},
		{
			name:  "explicit verb",
			spec:  []string{"{%q}(,)"},
			input: []string{"x"},
			want:  `"x"`,
		},
		{
			name:  "empty stream keeps the frame",
			input: []string{},
			want:  "<>",
		},
		{
			name:  "no prefix or suffix",
			spec:  []string{"{}(-)"},
			input: []string{"1", "2", "3"},
			want:  "1-2-3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromValues(tt.input...).Format(tt.spec...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStream_FormatBadTemplate(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "no elem part", spec: "<(, )>"},
		{name: "no sep part", spec: "<{}>"},
		{name: "unknown elem directive", spec: "<{x}(, )>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromValues("a").Format(tt.spec)
			require.Error(t, err)
			assert.True(t, IsFormatError(err))
		})
	}
}

func TestStream_FormatUnbounded(t *testing.T) {
	_, err := New[int](sequential(), LenInfinite).Format()
	require.Error(t, err)
	assert.True(t, IsUnlimitedError(err))
}

func TestStream_Fprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fromValues(1, 2, 3).Fprint(&buf))
	assert.Equal(t, "<1, 2, 3>\n", buf.String())
}
