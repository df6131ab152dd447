// Package opener hands URLs to the platform's external URL handler.
package opener

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

type Opener interface {
	Open(ctx context.Context, url string) error
}

type execOpener struct {
	goos string
}

func New() Opener {
	return &execOpener{goos: runtime.GOOS}
}

func (o *execOpener) Open(ctx context.Context, url string) error {
	name, args := Command(o.goos, url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "open %s", url)
	}
	// the handler outlives us, only reap it
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command returns the handler invocation for goos.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
