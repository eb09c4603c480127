package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "value")
	assert.Equal(t, "value", GetEnvString("TEST_ENV_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_ENV_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 10},
		{name: "valid", value: "42", want: 42},
		{name: "padded", value: " 7 ", want: 7},
		{name: "invalid falls back", value: "abc", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_ENV_INT", 10))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_ENV_FLOAT", "0.25")
	assert.InDelta(t, 0.25, GetEnvFloat("TEST_ENV_FLOAT", 1), 1e-9)

	t.Setenv("TEST_ENV_FLOAT", "nope")
	assert.InDelta(t, 1.0, GetEnvFloat("TEST_ENV_FLOAT", 1), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "TRUE", want: true},
		{value: "maybe", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("TEST_ENV_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_ENV_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_ENV_DURATION", time.Second))

	t.Setenv("TEST_ENV_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_ENV_DURATION", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_ENV_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetEnvStringList("TEST_ENV_LIST", nil))

	t.Setenv("TEST_ENV_LIST", " , ")
	assert.Equal(t, []string{"*"}, GetEnvStringList("TEST_ENV_LIST", []string{"*"}))
}

func TestValidateDurations(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.NoError(t, ValidateNonNegativeDuration(0))
	assert.Error(t, ValidateNonNegativeDuration(-time.Second))
}
