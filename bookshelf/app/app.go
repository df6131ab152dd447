package app

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/loader"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/screen"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/service/library"
	"github.com/Astemirdum/bookshelf/pkg/logger"
	"github.com/Astemirdum/bookshelf/pkg/opener"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sig)

	go func() {
		select {
		case <-sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	return Serve(ctx, cfg, os.Stdin, os.Stdout)
}

// Serve runs the book list screen on in/out until ctx is done, input ends or
// the user quits.
func Serve(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	log := logger.NewLogger(cfg.Log, "bookshelf")
	defer log.Sync() //nolint:errcheck
	log.Info("start", zap.String("server", cfg.BooksAPI.Server), zap.Duration("timeout", cfg.BooksAPI.Timeout))

	svc := library.NewService(log, cfg)
	books := loader.New(svc, log)
	defer books.Close()

	scr := screen.New(books, opener.New(), out, cfg, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the reader may stay parked on a blocking read after we are gone
	lines := make(chan string)
	go func() {
		if err := readLines(ctx, in, lines); err != nil {
			log.Warn("readLines", zap.Error(err))
		}
	}()

	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		defer func() {
			books.Close()
			cancel()
		}()
		return scr.Run(gctx, lines)
	})
	gg.Go(func() error {
		select {
		case <-books.Done():
			st := books.State()
			log.Debug("books resolved", zap.Stringer("status", st.Status),
				zap.Int("books", len(st.Books)), zap.String("error", st.Error))
		case <-gctx.Done():
		}
		return nil
	})

	err := gg.Wait()
	log.Info("Graceful shutdown finished")
	return err
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) error {
	defer close(lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-ctx.Done():
			return nil
		}
	}
	return sc.Err()
}
