package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantExit  bool
		wantCode  int
		wantError string
		check     func(t *testing.T, out string)
	}{
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:     "no pipeline prints usage",
			args:     []string{"-config-root", "conf"},
			wantExit: true,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Usage:")
				assert.Contains(t, out, "temples [options] PIPELINE")
			},
		},
		{
			name:      "unknown flag",
			args:      []string{"-workers", "3"},
			wantCode:  2,
			wantError: "flag provided but not defined: -workers",
		},
		{
			name:      "bad log format",
			args:      []string{"-config-root", "conf", "-log-format", "xml", "linreg"},
			wantCode:  2,
			wantError: "invalid log-format",
		},
		{
			name:      "bad log level",
			args:      []string{"-config-root", "conf", "-log-level", "loud", "linreg"},
			wantCode:  2,
			wantError: "invalid log-level",
		},
		{
			name:      "bad config format",
			args:      []string{"-config-root", "conf", "-config-format", "yaml", "linreg"},
			wantCode:  2,
			wantError: "unknown config format",
		},
		{
			name:      "two pipelines",
			args:      []string{"-config-root", "conf", "linreg", "show-config"},
			wantCode:  2,
			wantError: "only one pipeline",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.wantError != "" {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			assert.Nil(t, cfg)
			if tc.check != nil {
				tc.check(t, out.String())
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{
		"-config-root", "conf",
		"-config-format", "JSON",
		"-log-level", "DEBUG",
		"-log-format", "json",
		"linreg",
	}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "conf", cfg.ConfigRoot)
	assert.Equal(t, "json", cfg.ConfigFormat)
	assert.Equal(t, "linreg", cfg.Pipeline)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.List)
}

func TestParse_ListWithoutPipeline(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-list"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.True(t, cfg.List)
	assert.Equal(t, "toml", cfg.ConfigFormat)
}
