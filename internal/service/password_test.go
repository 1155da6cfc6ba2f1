package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Str0ng!pass", wantErr: nil},
		{name: "too short", password: "S1!a", wantErr: ErrWeakPassword},
		{name: "exactly min length", password: "Aa1!Aa1!", wantErr: nil},
		{name: "no uppercase", password: "weak1!pass", wantErr: ErrWeakPassword},
		{name: "no lowercase", password: "WEAK1!PASS", wantErr: ErrWeakPassword},
		{name: "no digit", password: "Weak!pass", wantErr: ErrWeakPassword},
		{name: "no symbol", password: "Weak1pass", wantErr: ErrWeakPassword},
		{name: "empty", password: "", wantErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("alice_01"))
	assert.NoError(t, validateUsername("Bob"))

	assert.ErrorIs(t, validateUsername("ab"), ErrInvalidUsername)
	assert.ErrorIs(t, validateUsername(""), ErrInvalidUsername)
	assert.ErrorIs(t, validateUsername("has space"), ErrInvalidUsername)
	assert.ErrorIs(t, validateUsername("bad-dash"), ErrInvalidUsername)
	assert.ErrorIs(t, validateUsername("waaaaaaaaaaaaaaaaaaaaaaaaaay_too_long"), ErrInvalidUsername)
}

func TestValidateDisplayName(t *testing.T) {
	assert.NoError(t, validateDisplayName("Alice the 1st"))
	assert.NoError(t, validateDisplayName("bob-builder"))

	assert.ErrorIs(t, validateDisplayName("ab"), ErrInvalidDisplayName)
	assert.ErrorIs(t, validateDisplayName("bad!char"), ErrInvalidDisplayName)
	assert.ErrorIs(t, validateDisplayName(""), ErrInvalidDisplayName)
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, validateColor("#1F6FEB"))
	assert.NoError(t, validateColor("#abcdef"))

	assert.ErrorIs(t, validateColor("1F6FEB"), ErrInvalidColor)
	assert.ErrorIs(t, validateColor("#1F6FE"), ErrInvalidColor)
	assert.ErrorIs(t, validateColor("#1F6FEB0"), ErrInvalidColor)
	assert.ErrorIs(t, validateColor("#GGGGGG"), ErrInvalidColor)
	assert.ErrorIs(t, validateColor(""), ErrInvalidColor)
}
