package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	type want struct {
		server  string
		timeout time.Duration
		width   int
		level   zapcore.Level
		sink    string
	}
	tests := []struct {
		name    string
		env     map[string]string
		ops     []config.Option
		want    want
		wantErr bool
	}{
		{
			name: "env wins over defaults",
			env: map[string]string{
				"BOOKSHELF_SERVER":       "http://10.0.2.2:5000/",
				"BOOKSHELF_HTTP_TIMEOUT": "3s",
				"BOOKSHELF_LOG_LEVEL":    "warn",
				"BOOKSHELF_LOG_SINK":     "/tmp/bookshelf.log",
			},
			ops: []config.Option{
				config.WithServer("http://localhost"),
				config.WithWidth(80),
				config.WithLogLevel(zapcore.DebugLevel),
			},
			want: want{
				server:  "http://10.0.2.2:5000",
				timeout: 3 * time.Second,
				width:   80,
				level:   zapcore.WarnLevel,
				sink:    "/tmp/bookshelf.log",
			},
		},
		{
			name: "defaults only",
			ops: []config.Option{
				config.WithServer("https://books.example.com/api"),
				config.WithHTTPTimeout(time.Second),
			},
			want: want{
				server:  "https://books.example.com/api",
				timeout: time.Second,
				level:   zapcore.InfoLevel,
			},
		},
		{
			name:    "server required",
			wantErr: true,
		},
		{
			name:    "server must be a url",
			env:     map[string]string{"BOOKSHELF_SERVER": "books"},
			wantErr: true,
		},
		{
			name:    "negative width",
			env:     map[string]string{"BOOKSHELF_SERVER": "http://localhost", "BOOKSHELF_WIDTH": "-1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"BOOKSHELF_SERVER", "BOOKSHELF_HTTP_TIMEOUT", "BOOKSHELF_WIDTH", "BOOKSHELF_LOG_LEVEL", "BOOKSHELF_LOG_SINK"} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(tt.ops...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want.server, cfg.BooksAPI.Server)
			require.Equal(t, tt.want.timeout, cfg.BooksAPI.Timeout)
			require.Equal(t, tt.want.width, cfg.Screen.Width)
			require.Equal(t, tt.want.level, cfg.Log.LogLevel)
			require.Equal(t, tt.want.sink, cfg.Log.Sink)
		})
	}
}
