package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name    string
		input   RegisterInput
		valid   bool
		badKeys []string
	}{
		{
			name:  "valid",
			input: RegisterInput{Username: "alice", Email: "alice@example.com", Password: "hunter22"},
			valid: true,
		},
		{
			name:    "all missing",
			input:   RegisterInput{},
			badKeys: []string{"username", "email", "password"},
		},
		{
			name:    "username too short",
			input:   RegisterInput{Username: "a", Email: "a@example.com", Password: "hunter22"},
			badKeys: []string{"username"},
		},
		{
			name:    "username whitespace only",
			input:   RegisterInput{Username: "   ", Email: "a@example.com", Password: "hunter22"},
			badKeys: []string{"username"},
		},
		{
			name:    "malformed email",
			input:   RegisterInput{Username: "alice", Email: "not-an-email", Password: "hunter22"},
			badKeys: []string{"email"},
		},
		{
			name:    "password too short",
			input:   RegisterInput{Username: "alice", Email: "alice@example.com", Password: "abc"},
			badKeys: []string{"password"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, errs := ValidateRegisterInput(tc.input)
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Empty(t, errs)
				return
			}
			for _, key := range tc.badKeys {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	ok, errs := ValidateLoginInput(LoginInput{Email: "alice@example.com", Password: "hunter22"})
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = ValidateLoginInput(LoginInput{})
	assert.False(t, ok)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	ok, errs = ValidateLoginInput(LoginInput{Email: "nope", Password: "hunter22"})
	assert.False(t, ok)
	assert.Contains(t, errs, "email")
}

func TestValidateTweetInput(t *testing.T) {
	ok, errs := ValidateTweetInput(TweetInput{Text: "hello"})
	assert.True(t, ok)
	assert.Empty(t, errs)

	for _, text := range []string{"", "   ", "\n\t"} {
		ok, errs = ValidateTweetInput(TweetInput{Text: text})
		assert.False(t, ok, "text %q should be rejected", text)
		assert.Contains(t, errs, "text")
	}
}

func TestValidatorsArePure(t *testing.T) {
	input := RegisterInput{Username: " alice ", Email: "alice@example.com", Password: "hunter22"}
	before := input
	_, _ = ValidateRegisterInput(input)
	assert.Equal(t, before, input)
}
