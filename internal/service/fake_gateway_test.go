package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pixiegarden/english-backend/internal/docstore"
)

// fakeGateway — документное хранилище в памяти для тестов сервисов.
type fakeGateway struct {
	available   bool
	reason      string
	collections map[string][]docstore.Document

	insertErr error
	queryErr  error

	lastQueryLimit int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		available:   true,
		collections: make(map[string][]docstore.Document),
	}
}

func newUnavailableGateway(reason string) *fakeGateway {
	return &fakeGateway{
		available:   false,
		reason:      reason,
		collections: make(map[string][]docstore.Document),
	}
}

func (f *fakeGateway) Available() bool {
	return f.available
}

func (f *fakeGateway) Reason() string {
	return f.reason
}

func (f *fakeGateway) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !f.available {
		return "", fmt.Errorf("insert into %s: %w: %s", collection, docstore.ErrUnavailable, f.reason)
	}
	if f.insertErr != nil {
		return "", f.insertErr
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	f.collections[collection] = append(f.collections[collection], docstore.Document{
		ID:   id,
		Data: json.RawMessage(data),
	})

	return id, nil
}

func (f *fakeGateway) Query(ctx context.Context, collection string, filter docstore.Filter, limit int) ([]docstore.Document, error) {
	f.lastQueryLimit = limit

	if !f.available {
		return nil, fmt.Errorf("query %s: %w: %s", collection, docstore.ErrUnavailable, f.reason)
	}
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	var matched []docstore.Document
	for _, doc := range f.collections[collection] {
		if filter.Field != "" {
			var fields map[string]interface{}
			if err := json.Unmarshal(doc.Data, &fields); err != nil {
				return nil, err
			}
			value, ok := fields[filter.Field].(string)
			if !ok || value != filter.Value {
				continue
			}
		}
		matched = append(matched, doc)
		if limit > 0 && len(matched) == limit {
			break
		}
	}

	return matched, nil
}

func (f *fakeGateway) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	if !f.available {
		return nil, fmt.Errorf("get from %s: %w: %s", collection, docstore.ErrUnavailable, f.reason)
	}

	for _, doc := range f.collections[collection] {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}

	return nil, nil
}

func (f *fakeGateway) ListCollections(ctx context.Context) ([]string, error) {
	if !f.available {
		return nil, fmt.Errorf("list collections: %w: %s", docstore.ErrUnavailable, f.reason)
	}

	var names []string
	for name := range f.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (f *fakeGateway) IsValidReference(id string) bool {
	return uuid.Validate(id) == nil
}

func (f *fakeGateway) count(collection string) int {
	return len(f.collections[collection])
}
