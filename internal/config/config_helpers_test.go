package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "10m")
		assert.Equal(t, 10*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		assert.Equal(t, 1*time.Hour+30*time.Minute+45*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "100")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Run("returns nil when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_SLICE_VAR")
		assert.Nil(t, getEnvAsSlice("TEST_SLICE_VAR"))
	})

	t.Run("returns nil for empty value", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", "")
		assert.Nil(t, getEnvAsSlice("TEST_SLICE_VAR"))
	})

	t.Run("splits comma-separated values", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", "10.0.0.1,10.0.0.2")
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsSlice("TEST_SLICE_VAR"))
	})

	t.Run("trims whitespace and drops empty entries", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", " 10.0.0.1 , ,10.0.0.2,")
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsSlice("TEST_SLICE_VAR"))
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_BOOL_VAR")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
	})

	t.Run("parses truthy values", func(t *testing.T) {
		for _, v := range []string{"true", "1", "TRUE", "t"} {
			t.Setenv("TEST_BOOL_VAR", v)
			assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false), "value %q", v)
		}
	})

	t.Run("returns default for invalid value", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "maybe")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
	})
}
