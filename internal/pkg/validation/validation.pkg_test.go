package validation

import (
	"testing"

	"go-storefront/internal/common/enum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Env     enum.EnvEnum `env:"APP_ENV" validate:"enum"`
	Email   string       `json:"email" validate:"required,email"`
	Quality int          `json:"quality" validate:"gte=1,lte=100"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Setup())

	assert.NoError(t, Validate(sample{Env: enum.LOCAL, Email: "a@example.com", Quality: 80}))

	err := Validate(sample{Env: "moon", Email: "nope", Quality: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV must be one of the allowed enum values")
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "quality must be greater than or equal to 1")
}

func TestSetupIsIdempotent(t *testing.T) {
	require.NoError(t, Setup())
	require.NoError(t, Setup())
}
