package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type stubLifecycle struct {
	hooks []fx.Hook
}

func (l *stubLifecycle) Append(hook fx.Hook) {
	l.hooks = append(l.hooks, hook)
}

func TestBlobStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Media: &config.MediaConfig{
			BucketURL:     "file://" + dir,
			PublicBaseURL: "http://localhost:4000/media/",
		},
	}

	lc := &stubLifecycle{}
	mediaStorage, err := NewBlobStorage(lc, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.Len(t, lc.hooks, 1)

	url, err := mediaStorage.Upload(context.Background(), "banners/home.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/media/banners/home.png", url)

	stored, err := os.ReadFile(filepath.Join(dir, "banners/home.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	require.NoError(t, lc.hooks[0].OnStop(context.Background()))
}

func TestNewBlobStorage_MissingConfig(t *testing.T) {
	_, err := NewBlobStorage(&stubLifecycle{}, &config.Config{}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
