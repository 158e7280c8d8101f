package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jt05610/petri-inhibitor/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(env.DebugKey, "")
	os.Unsetenv(env.DebugKey)
	t.Setenv(env.MaxStepsKey, "")
	os.Unsetenv(env.MaxStepsKey)

	e, err := env.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, e.Debug)
	assert.Equal(t, env.DefaultMaxSteps, e.MaxSteps)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(env.DebugKey, "")
	os.Unsetenv(env.DebugKey)
	t.Setenv(env.MaxStepsKey, "")
	os.Unsetenv(env.MaxStepsKey)

	f := filepath.Join(t.TempDir(), "petri.env")
	require.NoError(t, os.WriteFile(f, []byte("PETRI_DEBUG=true\nPETRI_MAX_STEPS=42\n"), 0o600))

	e, err := env.Load(f)
	require.NoError(t, err)
	assert.True(t, e.Debug)
	assert.Equal(t, 42, e.MaxSteps)
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	t.Setenv(env.MaxStepsKey, "7")
	f := filepath.Join(t.TempDir(), "petri.env")
	require.NoError(t, os.WriteFile(f, []byte("PETRI_MAX_STEPS=42\n"), 0o600))

	e, err := env.Load(f)
	require.NoError(t, err)
	assert.Equal(t, 7, e.MaxSteps)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, value := range map[string]string{
		env.DebugKey:    "sometimes",
		env.MaxStepsKey: "0",
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := env.Load(filepath.Join(dir, "missing.env"))
			assert.ErrorContains(t, err, name)
		})
	}
}
