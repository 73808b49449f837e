package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/validation"
)

func TestValidate(t *testing.T) {
	v := validation.New()

	type req struct {
		Name string `validate:"required"`
	}
	require.Error(t, v.Validate(req{}))
	require.NoError(t, v.Validate(req{Name: "ok"}))
}
