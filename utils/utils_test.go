package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single item", "Welding", []string{"Welding"}},
		{"trims and drops blanks", "A, ,B,", []string{"A", "B"}},
		{"inner whitespace kept", " First Aid ,CPR", []string{"First Aid", "CPR"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestNullIfBlank(t *testing.T) {
	assert.Nil(t, NullIfBlank(""))
	assert.Nil(t, NullIfBlank("  \t "))

	got := NullIfBlank("  Lagos ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Lagos", *got)
	}
}

func TestStrOrEmpty(t *testing.T) {
	assert.Equal(t, "", StrOrEmpty(nil))

	value := "Engineer"
	assert.Equal(t, "Engineer", StrOrEmpty(&value))
}
