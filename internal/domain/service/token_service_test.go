package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", want: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "lower case scheme", header: "bearer abc", want: ""},
		{name: "no space", header: "Bearerabc", want: ""},
		{name: "extra space kept", header: "Bearer  x", want: " x"},
		{name: "prefix only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBearerToken(tt.header))
		})
	}
}

func TestIsOwner(t *testing.T) {
	owner := uuid.New()

	assert.True(t, IsOwner(owner, owner))
	assert.False(t, IsOwner(owner, uuid.New()))
	assert.False(t, IsOwner(owner, uuid.Nil))
}
