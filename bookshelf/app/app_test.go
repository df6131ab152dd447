package app_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf/bookshelf/app"
	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/Astemirdum/bookshelf/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newConfig(t *testing.T, server string) config.Config {
	return config.Config{
		BooksAPI: config.BooksAPI{Server: server},
		Screen:   config.Screen{NoClear: true},
		Log: logger.Log{
			LogLevel: zapcore.DebugLevel,
			Sink:     filepath.Join(t.TempDir(), "bookshelf.log"),
		},
	}
}

func TestServe(t *testing.T) {
	e := echo.New()
	e.GET("/books", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"data":[{"_id":"1","title":"Foo"},{"_id":"2","title":"Bar"}]}`))
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	in, w := io.Pipe()
	defer w.Close()
	out := new(syncBuffer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Serve(context.Background(), newConfig(t, srv.URL), in, out)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[2] Title: Bar")
	}, 5*time.Second, 10*time.Millisecond)

	_, err := io.WriteString(w, "bar\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Search books: bar")
	}, 5*time.Second, 10*time.Millisecond)

	_, err = io.WriteString(w, ":q\n")
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}

	frames := strings.Split(out.String(), "Search books")
	last := frames[len(frames)-1]
	require.Contains(t, last, "[1] Title: Bar")
	require.NotContains(t, last, "Title: Foo")
}

func TestServe_ErrorView(t *testing.T) {
	e := echo.New()
	e.GET("/books", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	out := new(syncBuffer)
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Serve(ctx, newConfig(t, srv.URL), in, out)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Error: Failed to fetch books")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
}

func TestServe_QuitWhileLoading(t *testing.T) {
	release := make(chan struct{})
	e := echo.New()
	e.GET("/books", func(c echo.Context) error {
		select {
		case <-release:
		case <-c.Request().Context().Done():
		}
		return c.JSONBlob(http.StatusOK, []byte(`{"data":[]}`))
	})
	srv := httptest.NewServer(e)
	defer srv.Close()
	defer close(release)

	out := new(syncBuffer)
	err := app.Serve(context.Background(), newConfig(t, srv.URL), strings.NewReader(":q\n"), out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Loading...")
	require.NotContains(t, out.String(), "Error:")
}
