package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/mailmerge/internal/settings"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MAILMERGE_CONFIG", "")
	os.Unsetenv("MAILMERGE_CONFIG")
	t.Setenv("MAILMERGE_TEMPLATE", "")
	os.Unsetenv("MAILMERGE_TEMPLATE")
	t.Setenv("MAILMERGE_LOG_LEVEL", "")
	os.Unsetenv("MAILMERGE_LOG_LEVEL")

	s, err := settings.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err, "a missing env file is not an error")
	assert.Equal(t, "mailmerge.ini", s.Config)
	assert.Equal(t, "mailmerge.tmpl", s.Template)
	assert.Equal(t, log.WarnLevel, s.Level())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("MAILMERGE_CONFIG", "")
	os.Unsetenv("MAILMERGE_CONFIG")
	t.Setenv("MAILMERGE_LOG_LEVEL", "")
	os.Unsetenv("MAILMERGE_LOG_LEVEL")
	t.Setenv("MAILMERGE_TEMPLATE", "from-env.tmpl")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"MAILMERGE_CONFIG=campaign.ini\nMAILMERGE_TEMPLATE=from-file.tmpl\nMAILMERGE_LOG_LEVEL=debug\n"), 0644))

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "campaign.ini", s.Config)
	assert.Equal(t, "from-env.tmpl", s.Template, "the environment wins over the file")
	assert.Equal(t, log.DebugLevel, s.Level())
}

func TestSettings_Level(t *testing.T) {
	assert.Equal(t, log.ErrorLevel, (&settings.Settings{LogLevel: "error"}).Level())
	assert.Equal(t, log.WarnLevel, (&settings.Settings{LogLevel: "chatty"}).Level())
}
