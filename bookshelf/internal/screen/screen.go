// Package screen renders the searchable book list.
//
// A Screen is driven by a single event loop (Run) that owns all of its
// state: the latest loader state, the search query and the RTL switch.
// Frames are written whole to the output, one per event.
package screen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/loader"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/service/library"
	"github.com/Astemirdum/bookshelf/pkg/layout"
	"github.com/Astemirdum/bookshelf/pkg/locale"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	searchPlaceholder = "Search books"
	clearSequence     = "\033[H\033[2J"
	helpLine          = "type to search | :rtl switch layout | :open N open PDF | :q quit"
)

type View uint8

const (
	ViewLoading View = iota
	ViewError
	ViewList
)

func (v View) String() string {
	switch v {
	case ViewError:
		return "error"
	case ViewList:
		return "list"
	default:
		return "loading"
	}
}

// SelectView picks exactly one view: loading wins over error, error over list.
func SelectView(st loader.State) View {
	switch {
	case st.Loading():
		return ViewLoading
	case st.Error != "":
		return ViewError
	default:
		return ViewList
	}
}

type Option func(s *Screen)

func WithLayout(cfg *layout.Config) Option {
	return func(s *Screen) {
		s.layout = cfg
	}
}

func WithLocales(detect func() []locale.Locale) Option {
	return func(s *Screen) {
		s.locales = detect
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Screen) {
		s.loc = loc
	}
}

type Screen struct {
	books   StateSource
	opener  URLOpener
	out     io.Writer
	log     *zap.Logger
	layout  *layout.Config
	locales func() []locale.Locale
	loc     *time.Location
	server  string
	width   int
	clear   bool

	state  loader.State
	query  string
	isRTL  bool
	lang   language.Tag
	notice string
	redraw chan struct{}
}

func New(books StateSource, opener URLOpener, out io.Writer, cfg config.Config, log *zap.Logger, ops ...Option) *Screen {
	s := &Screen{
		books:   books,
		opener:  opener,
		out:     out,
		log:     log.Named("screen"),
		layout:  layout.Shared(),
		locales: locale.Detect,
		loc:     time.Local,
		server:  cfg.BooksAPI.Server,
		width:   cfg.Screen.Width,
		clear:   !cfg.Screen.NoClear,
		state:   books.State(),
		lang:    language.English,
		redraw:  make(chan struct{}, 1),
	}
	for _, op := range ops {
		op(s)
	}
	return s
}

// Activate detects the device locale, sets the RTL switch from it and
// starts loading. The shared layout is left alone until the switch is used.
func (s *Screen) Activate(ctx context.Context) {
	locales := s.locales()
	code := locale.LanguageCode(locales)
	if len(locales) > 0 {
		s.lang = locales[0].Tag
	}
	s.isRTL = strings.HasPrefix(code, "ar")
	s.log.Debug("activate", zap.String("languageCode", code), zap.Bool("rtl", s.isRTL))

	s.books.Activate(ctx)
}

func (s *Screen) IsRTL() bool {
	return s.isRTL
}

// ToggleRTL inverts the switch and forces the process-wide layout direction.
func (s *Screen) ToggleRTL() {
	s.isRTL = !s.isRTL
	s.layout.ForceRTL(s.isRTL)
	s.log.Info("layout direction forced", zap.Stringer("direction", s.layout.Direction()))
}

func (s *Screen) SetQuery(q string) {
	s.query = q
}

func (s *Screen) Query() string {
	return s.query
}

func (s *Screen) SetState(st loader.State) {
	s.state = st
}

func (s *Screen) View() View {
	return SelectView(s.state)
}

// Visible is the filtered list as currently shown.
func (s *Screen) Visible() []model.Book {
	return Filter(s.state.Books, s.query)
}

// Open hands the n-th visible book's file to the external URL handler.
func (s *Screen) Open(ctx context.Context, n int) error {
	if s.View() != ViewList {
		return errors.New("no books to open")
	}
	visible := s.Visible()
	if n < 1 || n > len(visible) {
		return errors.Errorf("no book #%d", n)
	}
	url := library.ResourceURL(s.server, visible[n-1].FileURI)
	if err := s.opener.Open(ctx, url); err != nil {
		return errors.Wrap(err, "open PDF")
	}
	s.log.Info("opened", zap.String("id", visible[n-1].ID), zap.String("url", url))
	return nil
}

// Lines renders the current frame without alignment.
func (s *Screen) Lines() []string {
	search := searchPlaceholder
	if s.query != "" {
		search = searchPlaceholder + ": " + s.query
	}
	rtl := "[ ]"
	if s.isRTL {
		rtl = "[x]"
	}
	lines := []string{fmt.Sprintf("%s    RTL %s", search, rtl)}
	if s.notice != "" {
		lines = append(lines, "! "+s.notice)
	}
	lines = append(lines, "")

	switch s.View() {
	case ViewLoading:
		lines = append(lines, "Loading...")
	case ViewError:
		lines = append(lines, "Error: "+s.state.Error)
	case ViewList:
		for i, b := range s.Visible() {
			lines = append(lines, s.ItemLines(b, i+1)...)
			lines = append(lines, "")
		}
	}
	return append(lines, helpLine)
}

// Render writes one frame laid out in the shared direction.
func (s *Screen) Render() error {
	dir := s.layout.Direction()
	var b strings.Builder
	if s.clear {
		b.WriteString(clearSequence)
	}
	for _, line := range s.Lines() {
		b.WriteString(dir.Align(line, s.width))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(s.out, b.String())
	return errors.Wrap(err, "render")
}

// Run activates the screen and processes loader states and input lines
// until ctx is done, input ends or the user quits.
func (s *Screen) Run(ctx context.Context, lines <-chan string) error {
	states, cancel := s.books.Subscribe()
	defer cancel()
	unsubscribe := s.layout.Subscribe(func(layout.Direction) {
		select {
		case s.redraw <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	s.Activate(ctx)
	if err := s.Render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-states:
			if !ok {
				states = nil
				continue
			}
			s.state = st
		case <-s.redraw:
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := s.handle(ctx, ParseCommand(line)); quit {
				return nil
			}
		}
		if err := s.Render(); err != nil {
			return err
		}
	}
}

func (s *Screen) handle(ctx context.Context, cmd Command) (quit bool) {
	s.notice = ""
	switch cmd.Kind {
	case CmdQuit:
		return true
	case CmdSearch:
		s.SetQuery(cmd.Query)
	case CmdToggleRTL:
		s.ToggleRTL()
	case CmdOpen:
		if err := s.Open(ctx, cmd.Index); err != nil {
			s.log.Warn("open", zap.Error(err))
			s.notice = err.Error()
		}
	default:
		s.notice = "unknown command " + cmd.Raw
	}
	return false
}
