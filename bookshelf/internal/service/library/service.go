package library

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/Astemirdum/bookshelf/bookshelf/config"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/model"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.BooksAPI
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log.Named("library"),
		client: &http.Client{Timeout: cfg.BooksAPI.Timeout},
		cfg:    cfg.BooksAPI,
	}
}

// GetBooks fetches GET {server}/books. A body without a data field is not an
// error: it yields a nil collection.
func (s *Service) GetBooks(ctx context.Context) ([]model.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Server+"/books", http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reqID := uuid.NewString()
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, reqID)

	log := s.log.With(zap.String("request_id", reqID), zap.String("url", req.URL.String()))
	log.Debug("GetBooks")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("GetBooks s.client.Do", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("GetBooks", zap.Int("status", resp.StatusCode))
		return nil, errors.WithStack(&errs.StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read books body")
	}

	books, hasData, err := decodeBooks(body)
	if err != nil {
		log.Error("GetBooks decode", zap.Error(err))
		return nil, err
	}
	if !hasData {
		log.Warn("GetBooks payload has no data field", zap.Int("bytes", len(body)))
	}
	log.Debug("GetBooks done", zap.Int("books", len(books)))
	return books, nil
}

// ResourceURL resolves a relative resource path such as coverPhotoUri or
// fileUri against the server.
func ResourceURL(server, uri string) string {
	return strings.TrimRight(server, "/") + "/" + strings.TrimLeft(uri, "/")
}

func decodeBooks(body []byte) (books []model.Book, hasData bool, err error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false, errors.WithStack(errs.ErrFailedToFetch)
	}
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, errors.Wrap(err, "decode books payload")
	}
	if falsy(payload) {
		return nil, false, errors.WithStack(errs.ErrFailedToFetch)
	}

	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil, false, nil
	}
	if _, ok := obj["data"]; !ok {
		return nil, false, nil
	}

	var list model.ListBooks
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, true, errors.Wrap(err, "decode books")
	}
	return list.Data, true, nil
}

func falsy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}
