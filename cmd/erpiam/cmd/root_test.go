package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd(models.NewAppBuildInfo("", "", ""))

	for _, name := range []string{"keys", "healthcheck", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build commit: abc123")
	assert.Contains(t, out, runtime.Version())
}

func TestKeysCmd_WritesPair(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")

	out, err := execute(t, "keys", "--dir", dir, "--bits", "1024")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, utils.PrivateKeyFile))

	private, err := utils.LoadRSAPrivateKey(filepath.Join(dir, utils.PrivateKeyFile))
	require.NoError(t, err)
	public, err := utils.LoadRSAPublicKey(filepath.Join(dir, utils.PublicKeyFile))
	require.NoError(t, err)
	assert.True(t, private.PublicKey.Equal(public), "keys must belong together")
}

func TestKeysCmd_ExistingDirIsLeftAlone(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "keys", "--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHealthcheckCmd(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "healthy",
			status:     http.StatusOK,
			body:       `{"status":"ok","database":"up","version":"1.0.0"}`,
			wantOutput: "status: ok\ndatabase: up\nversion: 1.0.0\n",
		},
		{
			name:    "database down",
			status:  http.StatusServiceUnavailable,
			body:    `{"status":"error","database":"down"}`,
			wantErr: true,
		},
		{
			name:    "wrong status in body",
			status:  http.StatusOK,
			body:    `{"status":"starting"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			out, err := execute(t, "healthcheck", "--url", srv.URL, "--timeout", "2s")

			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrUnhealthy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, out)
		})
	}
}

func TestHealthcheckCmd_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := execute(t, "healthcheck", "--url", url, "--timeout", "1s")

	assert.Error(t, err)
}
