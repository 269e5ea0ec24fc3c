package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/mailmerge"
)

const testConfig = `
[general]
From=a@b.com
Subject=Hi %_FN%
[recipients]
c@d.com=Carl Sagan|ORG:-X
e@f.com=Eve|ORG:-Y
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// useCampaign points the command globals at the given files for one test
func useCampaign(t *testing.T, configs []string, template string) {
	t.Helper()
	oldConfigs, oldTemplate := cfgFiles, templateFile
	oldOpts, oldOptsErr := opts, optsErr
	cfgFiles, templateFile = configs, template
	opts, optsErr = nil, nil
	t.Cleanup(func() {
		cfgFiles, templateFile = oldConfigs, oldTemplate
		opts, optsErr = oldOpts, oldOptsErr
	})
}

// runRoot executes the root command with args and returns its output. Flag
// values and settings left over from earlier runs are reset first.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	oldConfigs, oldTemplate, oldLimit := cfgFiles, templateFile, previewLimit
	oldOpts, oldOptsErr := opts, optsErr

	cfg, ok := rootCmd.PersistentFlags().Lookup("config").Value.(pflag.SliceValue)
	require.True(t, ok)
	require.NoError(t, cfg.Replace(nil))
	templateFile, previewLimit = "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFiles, templateFile, previewLimit = oldConfigs, oldTemplate, oldLimit
		opts, optsErr = oldOpts, oldOptsErr
	})

	err := Execute()
	return out.String(), err
}

func TestLoadCampaign(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "c.ini", testConfig)

	t.Run("valid", func(t *testing.T) {
		useCampaign(t, []string{cfgPath}, writeFile(t, dir, "ok.tmpl", "Hi %ORG%"))

		var out bytes.Buffer
		cfg, tp, err := loadCampaign(&out)
		require.NoError(t, err)
		assert.Len(t, cfg.Recipients, 2)
		assert.Equal(t, []string{"ORG"}, tp.Keys())
		assert.Empty(t, out.String())
	})

	t.Run("missing keys", func(t *testing.T) {
		useCampaign(t, []string{cfgPath}, writeFile(t, dir, "bad.tmpl", "Hi %MISSING%"))

		var out bytes.Buffer
		_, _, err := loadCampaign(&out)
		assert.EqualError(t, err, "2 recipient(s) lack template data")
		assert.Equal(t,
			"✗ c@d.com is missing the following key(s): MISSING\n"+
				"✗ e@f.com is missing the following key(s): MISSING\n", out.String())
	})

	t.Run("missing config file", func(t *testing.T) {
		useCampaign(t, []string{filepath.Join(dir, "nope.ini")}, filepath.Join(dir, "ok.tmpl"))

		_, _, err := loadCampaign(&bytes.Buffer{})
		assert.ErrorContains(t, err, "config file not found")
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.ini", "[general]\nFrom=a@b.com\nSubject=x\n[recipients]\n@d.com=Carl\n")
		useCampaign(t, []string{bad}, filepath.Join(dir, "ok.tmpl"))

		_, _, err := loadCampaign(&bytes.Buffer{})
		assert.EqualError(t, err, "config validation failed: invalid email: @d.com")
	})
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "c.ini", testConfig)

	t.Run("valid", func(t *testing.T) {
		tmplPath := writeFile(t, dir, "ok.tmpl", "Dear %_FN% of %ORG%")
		out, err := runRoot(t, "check", "-c", cfgPath, "-t", tmplPath)
		require.NoError(t, err)
		assert.Equal(t, "✓ Configuration is valid (2 recipients)\n"+
			"✓ Template "+tmplPath+" is complete for every recipient (2 placeholder(s))\n", out)
	})

	t.Run("layered configs", func(t *testing.T) {
		extra := writeFile(t, dir, "extra.ini", "[recipients]\ng@h.com=Gus|ORG:-Z\n")
		tmplPath := writeFile(t, dir, "ok.tmpl", "Dear %_FN% of %ORG%")
		out, err := runRoot(t, "check", "-c", cfgPath, "-c", extra, "-t", tmplPath)
		require.NoError(t, err)
		assert.Contains(t, out, "✓ Configuration is valid (3 recipients)")
	})

	t.Run("missing keys", func(t *testing.T) {
		tmplPath := writeFile(t, dir, "bad.tmpl", "Hi %MISSING%")
		out, err := runRoot(t, "check", "-c", cfgPath, "-t", tmplPath)
		assert.EqualError(t, err, "2 recipient(s) lack template data")
		assert.NotContains(t, out, "✓")
		assert.Contains(t, out, "✗ c@d.com is missing the following key(s): MISSING")
	})
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "c.ini", testConfig)
	tmplPath := writeFile(t, dir, "c.tmpl", "Dear %_FN% %_LN% of %ORG%")

	out, err := runRoot(t, "preview", "-c", cfgPath, "-t", tmplPath, "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "From: a@b.com\nTo: c@d.com\nSubject: Hi Carl\n\nDear Carl Sagan of X\n", out)
}

func TestMalformedEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "BAD-KEY=1\n")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("version still works", func(t *testing.T) {
		out, err := runRoot(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, mailmerge.Version)
	})

	t.Run("sample still works", func(t *testing.T) {
		out, err := runRoot(t, "sample", "template")
		require.NoError(t, err)
		assert.Contains(t, out, "%ORG%")
	})

	t.Run("check reports it", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "c.ini", testConfig)
		tmplPath := writeFile(t, dir, "c.tmpl", "Hi %ORG%")
		_, err := runRoot(t, "check", "-c", cfgPath, "-t", tmplPath)
		assert.ErrorContains(t, err, "failed to load settings")
	})
}

func TestCompletionCommand(t *testing.T) {
	out, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mailmerge")
}

func TestSampleConfigCommand(t *testing.T) {
	out, err := runRoot(t, "sample", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[recipients]")
}
