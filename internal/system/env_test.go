package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grasmash/drupal-environment-detector/internal/system"
)

func TestEnvironment_Lookup(t *testing.T) {
	env := system.NewEnvironment()

	t.Setenv("ENVDETECT_TEST_VAR", "value")

	value, ok := env.Lookup("ENVDETECT_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	value, ok = env.Lookup("ENVDETECT_TEST_VAR_UNSET")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestEnvironment_Get(t *testing.T) {
	env := system.NewEnvironment()

	t.Setenv("ENVDETECT_TEST_VAR", "value")

	assert.Equal(t, "value", env.Get("ENVDETECT_TEST_VAR"))
	assert.Empty(t, env.Get("ENVDETECT_TEST_VAR_UNSET"))
}
