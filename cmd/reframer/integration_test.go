package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/newsreframer/internal/tuitest"
)

func TestReframerEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a PTY")
	}
	if runtime.GOOS == "windows" {
		t.Skip("PTY harness is unix-only")
	}

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"outputs":{"neutral_summary":"Fires spread across the state.","curiosity_headline":"What makes this season different?"}}`))
	}))
	defer server.Close()

	binary := buildBinary(t, moduleDir(t))
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--api-url", server.URL},
		Env:     []string{"XDG_CONFIG_HOME=" + t.TempDir(), "REFRAMER_API_URL=", "REFRAMER_LOG_LEVEL="},
		Width:   120,
		Height:  48,
		Steps: []tuitest.Step{
			{WaitFor: "News Reframer"},
			{Input: tuitest.KeyEnter},
			{WaitFor: "Please enter a topic."},
			{Input: []byte("wildfires in California")},
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyEnter},
			{WaitFor: "Curiosity headline"},
			{Input: tuitest.KeyCtrlT},
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyCtrlC},
		},
		Timeout: 20 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.True(t, rec.Contains("Neutral summary"))
	assert.True(t, rec.Contains("What makes this season different?"))
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "reframer-integration")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
