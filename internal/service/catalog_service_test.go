package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixiegarden/english-backend/internal/docstore"
	"github.com/pixiegarden/english-backend/internal/models"
)

func TestCatalogService_Seed(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewCatalogService(gateway, zerolog.Nop())
	ctx := context.Background()

	result, err := svc.Seed(ctx)
	require.NoError(t, err)

	assert.False(t, result.AlreadySeeded)
	assert.Equal(t, 3, result.Inserted)
	require.Equal(t, 3, gateway.count(lessonCollection))

	docs, err := gateway.Query(ctx, lessonCollection, docstore.Filter{}, 0)
	require.NoError(t, err)

	titles := make([]string, 0, len(docs))
	for _, doc := range docs {
		var lesson models.Lesson
		require.NoError(t, doc.Decode(&lesson))
		titles = append(titles, lesson.Title)
	}
	assert.Equal(t, []string{"Garden Friends", "Farm Picnic", "Weather Wizard"}, titles)
}

func TestCatalogService_Seed_Idempotent(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewCatalogService(gateway, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	result, err := svc.Seed(ctx)
	require.NoError(t, err)

	assert.True(t, result.AlreadySeeded)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 3, gateway.count(lessonCollection))
}

func TestCatalogService_Seed_StorageUnavailable(t *testing.T) {
	gateway := newUnavailableGateway("connection refused")
	svc := NewCatalogService(gateway, zerolog.Nop())

	_, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, docstore.ErrUnavailable)
	assert.Equal(t, 0, gateway.count(lessonCollection))
}

func TestCatalogService_List(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewCatalogService(gateway, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	list := svc.List(ctx, 50)

	assert.Empty(t, list.Note)
	require.Len(t, list.Items, 3)
	for _, lesson := range list.Items {
		assert.NotEmpty(t, lesson.ID)
	}
}

func TestCatalogService_List_ClampsLimit(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewCatalogService(gateway, zerolog.Nop())

	svc.List(context.Background(), 1000)

	assert.Equal(t, 100, gateway.lastQueryLimit)
}

func TestCatalogService_List_FallbackWhenUnavailable(t *testing.T) {
	gateway := newUnavailableGateway("connection refused")
	svc := NewCatalogService(gateway, zerolog.Nop())

	list := svc.List(context.Background(), 50)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "Garden Friends", list.Items[0].Title)
	assert.Equal(t, []string{"bee", "tree", "pond", "seed", "sun"}, list.Items[0].Words)
	assert.Equal(t, "Farm Picnic", list.Items[1].Title)
	assert.Equal(t, []string{"milk", "egg", "bread", "honey", "jam"}, list.Items[1].Words)

	assert.True(t, strings.HasPrefix(list.Note, "database not available: "))
}

func TestCatalogService_List_NoteTruncated(t *testing.T) {
	gateway := newFakeGateway()
	gateway.queryErr = errors.New(strings.Repeat("x", 200))
	svc := NewCatalogService(gateway, zerolog.Nop())

	list := svc.List(context.Background(), 50)

	require.NotEmpty(t, list.Note)
	assert.Equal(t, "database not available: "+strings.Repeat("x", 80), list.Note)
}
