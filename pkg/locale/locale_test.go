package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en", English.Welcome},
		{"en-GB", English.Welcome},
		{"fr", French.Welcome},
		{"fr-CA", French.Welcome},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			msgs, err := Lookup(tt.tag)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, msgs.Welcome)
		})
	}
}

func TestLookupInvalidTag(t *testing.T) {
	msgs, err := Lookup("not a language!")
	assert.Error(t, err)
	assert.Equal(t, English.Welcome, msgs.Welcome)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Available", English.Status(true))
	assert.Equal(t, "Borrowed", English.Status(false))
	assert.Equal(t, "Emprunté", French.Status(false))
}
