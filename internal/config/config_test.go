package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brightpath/internal/subject"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"BRIGHTPATH_DB_PATH", "BRIGHTPATH_LEARNER_AGE_GROUP", "BRIGHTPATH_LOG_LEVEL", "BRIGHTPATH_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB.Path)
	assert.Equal(t, subject.AgeMiddle, cfg.AgeGroup())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	isolateHome(t)
	p := writeConfig(t, `
db:
  path: /tmp/kids.db
learner:
  age_group: "4-6"
log:
  level: debug
  format: json
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kids.db", cfg.DB.Path)
	assert.Equal(t, subject.AgeYoung, cfg.AgeGroup())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateHome(t)
	p := writeConfig(t, "learner:\n  age_group: young\nlog:\n  level: info\n")
	t.Setenv("BRIGHTPATH_LEARNER_AGE_GROUP", "older")
	t.Setenv("BRIGHTPATH_DB_PATH", "/data/bp.db")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, subject.AgeOlder, cfg.AgeGroup())
	assert.Equal(t, "/data/bp.db", cfg.DB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_DefaultFileInHome(t *testing.T) {
	isolateHome(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".config", "brightpath")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("learner:\n  age_group: older\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, subject.AgeOlder, cfg.AgeGroup())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolateHome(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad age", "learner:\n  age_group: teen\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"bad yaml", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"BRIGHTPATH_DB_PATH":           "db.path",
		"BRIGHTPATH_LEARNER_AGE_GROUP": "learner.age_group",
		"BRIGHTPATH_LOG_LEVEL":         "log.level",
		"BRIGHTPATH_DB":                "",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
