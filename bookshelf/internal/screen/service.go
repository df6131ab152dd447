package screen

import (
	"context"

	"github.com/Astemirdum/bookshelf/bookshelf/internal/loader"
	"github.com/Astemirdum/bookshelf/pkg/opener"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ StateSource = (*loader.Loader)(nil)
	_ URLOpener   = opener.New()
)

type StateSource interface {
	Activate(ctx context.Context)
	State() loader.State
	Subscribe() (<-chan loader.State, func())
}

type URLOpener interface {
	Open(ctx context.Context, url string) error
}
