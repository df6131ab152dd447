// Package loader fetches the book collection once and publishes the load
// state as a tagged value: Loading, Success(books) or Failure(message).
//
// Every publication carries a whole State, so consumers never observe a
// half-applied transition such as an error while still loading.
package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/Astemirdum/bookshelf/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/service/library"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=loader.go -destination=mocks/mock.go

var _ BookService = (*library.Service)(nil)

type BookService interface {
	GetBooks(ctx context.Context) ([]model.Book, error)
}

type Status uint8

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "loading"
	}
}

type State struct {
	Status Status
	// Books is nil when the payload carried no data field.
	Books []model.Book
	Error string
}

func (s State) Loading() bool {
	return s.Status == StatusLoading
}

type Loader struct {
	svc  BookService
	log  *zap.Logger
	once sync.Once
	done chan struct{}

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int
	closed bool
}

func New(svc BookService, log *zap.Logger) *Loader {
	return &Loader{
		svc:  svc,
		log:  log.Named("loader"),
		done: make(chan struct{}),
		state: State{
			Status: StatusLoading,
			Books:  []model.Book{},
		},
		subs: make(map[int]chan State),
	}
}

// Activate starts the fetch. Only the first call has an effect.
func (l *Loader) Activate(ctx context.Context) {
	l.once.Do(func() {
		go l.fetch(ctx)
	})
}

// Done is closed once the fetch has resolved, whether or not the result was
// published.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Subscribe delivers the current state immediately and then every
// transition. Slow readers only see the latest state. The channel is closed
// by cancel or Close.
func (l *Loader) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		close(ch)
		return ch, func() {}
	}
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	ch <- l.state

	return ch, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if sub, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(sub)
		}
	}
}

// Close detaches the loader from its consumers. A fetch still in flight
// resolves into nothing.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
}

func (l *Loader) fetch(ctx context.Context) {
	defer close(l.done)
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("fetch panic", zap.Any("panic", r))
			l.fail(fmt.Sprint(r))
		}
	}()

	books, err := l.svc.GetBooks(ctx)
	if err != nil {
		fe := errs.AsFetchError(err)
		l.log.Warn("fetch failed", zap.Error(err))
		l.fail(fe.Error())
		return
	}
	l.log.Info("fetch done", zap.Int("books", len(books)))
	l.publish(func(State) State {
		return State{Status: StatusSuccess, Books: books}
	})
}

func (l *Loader) fail(msg string) {
	l.publish(func(prev State) State {
		return State{Status: StatusFailure, Books: prev.Books, Error: msg}
	})
}

func (l *Loader) publish(next func(prev State) State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.log.Debug("result discarded, loader closed")
		return
	}
	l.state = next(l.state)
	for _, ch := range l.subs {
		select {
		case <-ch:
		default:
		}
		ch <- l.state
	}
}
