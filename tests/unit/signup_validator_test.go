package unit

import (
	"testing"

	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup_Success(t *testing.T) {
	assert.NoError(t, validator.ValidateSignup("taro@example.com", "password123"))
}

func TestValidateSignup_EmailRequired(t *testing.T) {
	assert.Equal(t, validator.ErrEmailRequired, validator.ValidateSignup("", "password123"))
	assert.Equal(t, validator.ErrEmailRequired, validator.ValidateSignup("   ", "password123"))
}

func TestValidateSignup_InvalidEmail(t *testing.T) {
	for _, email := range []string{"taro", "taro@", "@example.com", "taro@example", "a b@example.com"} {
		assert.Equal(t, validator.ErrInvalidEmail, validator.ValidateSignup(email, "password123"), email)
	}
}

func TestValidateSignup_PasswordRequired(t *testing.T) {
	assert.Equal(t, validator.ErrPasswordRequired, validator.ValidateSignup("taro@example.com", ""))
}

func TestValidateSignup_PasswordTooShort(t *testing.T) {
	assert.Equal(t, validator.ErrPasswordTooShort, validator.ValidateSignup("taro@example.com", "short"))
}
