package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	portmocks "github.com/bnema/tempo/internal/application/port/mocks"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/domain/repository"
	repomocks "github.com/bnema/tempo/internal/domain/repository/mocks"
	"github.com/bnema/tempo/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testIcon = "https://icons.test/icon.png"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// annotate is a ResolveBatch stand-in that sets every favicon to testIcon.
func annotate(_ context.Context, items []*entity.Bookmark, _ int) []*entity.Bookmark {
	for _, b := range items {
		b.Favicon = testIcon
	}
	return items
}

func TestManageBookmarksUseCase_Load_PrefersHostTree(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	source := portmocks.NewMockBookmarkSource(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	host := []*entity.Bookmark{
		{ID: "10", Title: "Go", URL: "https://go.dev", Folder: "dev", VisitCount: 7},
	}
	source.EXPECT().Bookmarks(mock.Anything).Return(host, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)

	uc := usecase.NewManageBookmarksUseCase(repo, source, favicons, 32)

	got := uc.Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "https://go.dev", got[0].URL)
	assert.Equal(t, testIcon, got[0].Favicon)
	assert.Zero(t, got[0].VisitCount, "host visit counts are reset")
	assert.False(t, got[0].LastVisited.IsZero())
	assert.Equal(t, usecase.OriginHost, uc.Origin())
}

func TestManageBookmarksUseCase_Load_HostErrorFallsBackToDefaults(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	source := portmocks.NewMockBookmarkSource(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	source.EXPECT().Bookmarks(mock.Anything).Return(nil, errors.New("no such file"))
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)

	uc := usecase.NewManageBookmarksUseCase(repo, source, favicons, 32)

	got := uc.Load(ctx)
	require.Len(t, got, 5)
	assert.Equal(t, "GitHub", got[0].Title)
	assert.Equal(t, usecase.OriginDefault, uc.Origin())
}

func TestManageBookmarksUseCase_Load_UsesStoredList(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	stored := []*entity.Bookmark{
		{ID: "a", Title: "A", URL: "https://a.com", VisitCount: 3},
		{ID: "b", Title: "B", URL: "https://b.com"},
	}
	repo.EXPECT().GetAll(mock.Anything).Return(stored, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	got := uc.Load(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].VisitCount, "stored visit counts are kept")
	assert.Equal(t, usecase.OriginStored, uc.Origin())
}

func TestManageBookmarksUseCase_Load_EmptyOrFailingStoreUsesDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored []*entity.Bookmark
		err    error
	}{
		{name: "empty store", stored: []*entity.Bookmark{}},
		{name: "store error", err: errors.New("db locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockBookmarkRepository(t)
			favicons := portmocks.NewMockFaviconResolver(t)

			repo.EXPECT().GetAll(mock.Anything).Return(tt.stored, tt.err)
			favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)

			uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

			got := uc.Load(ctx)
			assert.Len(t, got, 5)
			assert.Equal(t, usecase.OriginDefault, uc.Origin())
		})
	}
}

func TestManageBookmarksUseCase_List_LoadsOnce(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com"}}, nil).Once()
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate).Once()

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	first := uc.List(ctx)
	second := uc.List(ctx)
	assert.Equal(t, first, second)

	// Returned values are copies.
	first[0].Title = "changed"
	assert.Empty(t, uc.List(ctx)[0].Title)
}

func TestManageBookmarksUseCase_Add_SeedsStoreWithDefaults(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	favicons.EXPECT().ResolveSmart(mock.Anything, "https://go.dev", 32).Return(testIcon)

	var saved []string
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(_ context.Context, b *entity.Bookmark) { saved = append(saved, b.URL) }).
		Return(nil)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	b, err := uc.Add(ctx, "Go", "go.dev")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", b.URL)
	assert.Equal(t, testIcon, b.Favicon)
	assert.Equal(t, entity.DefaultFolder, b.Folder)

	require.Len(t, saved, 6, "defaults are stored alongside the new bookmark")
	assert.Equal(t, "https://go.dev", saved[0])

	list := uc.List(ctx)
	assert.Equal(t, "https://go.dev", list[0].URL)
}

func TestManageBookmarksUseCase_Add_SavesOnlyNewBookmarkWhenStored(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com"}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	favicons.EXPECT().ResolveSmart(mock.Anything, "https://b.com", 32).Return(testIcon)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(b *entity.Bookmark) bool {
		return b.URL == "https://b.com"
	})).Return(nil).Once()

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	b, err := uc.Add(ctx, "", "https://b.com")
	require.NoError(t, err)
	assert.Equal(t, "b.com", b.Title, "empty title falls back to the domain")
}

func TestManageBookmarksUseCase_Add_DuplicateReturnsExisting(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", Title: "A", URL: "https://a.com"}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	b, err := uc.Add(ctx, "Other", "https://a.com")
	require.NoError(t, err)
	assert.Equal(t, entity.BookmarkID("a"), b.ID)
	assert.Len(t, uc.List(ctx), 1)
}

func TestManageBookmarksUseCase_Add_RejectsInvalidURL(t *testing.T) {
	ctx := testContext()

	uc := usecase.NewManageBookmarksUseCase(
		repomocks.NewMockBookmarkRepository(t), nil, portmocks.NewMockFaviconResolver(t), 32)

	_, err := uc.Add(ctx, "nope", "not a url")
	require.Error(t, err)
}

func TestManageBookmarksUseCase_Add_ReturnsSaveError(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com"}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	favicons.EXPECT().ResolveSmart(mock.Anything, mock.Anything, 32).Return(testIcon)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	_, err := uc.Add(ctx, "B", "https://b.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save bookmark")
}

func TestManageBookmarksUseCase_Remove(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{
		{ID: "a", URL: "https://a.com"},
		{ID: "b", URL: "https://b.com"},
	}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	repo.EXPECT().Delete(mock.Anything, entity.BookmarkID("a")).Return(nil)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	require.NoError(t, uc.Remove(ctx, "a"))
	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, entity.BookmarkID("b"), list[0].ID)

	err := uc.Remove(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrBookmarkNotFound)
}

func TestManageBookmarksUseCase_RecordVisit(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com", VisitCount: 1}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(b *entity.Bookmark) bool {
		return b.ID == "a" && b.VisitCount == 2
	})).Return(nil)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	before := time.Now()
	b, err := uc.RecordVisit(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, b.VisitCount)
	assert.False(t, b.LastVisited.Before(before))

	_, err = uc.RecordVisit(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrBookmarkNotFound)
}

func TestManageBookmarksUseCase_Add_ConcurrentSameURLInsertsOnce(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com"}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	favicons.EXPECT().ResolveSmart(mock.Anything, "https://go.dev", 32).
		RunAndReturn(func(context.Context, string, int) string {
			time.Sleep(50 * time.Millisecond)
			return testIcon
		})
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)
	uc.List(ctx)

	var (
		wg  sync.WaitGroup
		ids [2]entity.BookmarkID
	)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := uc.Add(ctx, "Go", "https://go.dev")
			assert.NoError(t, err)
			if b != nil {
				ids[i] = b.ID
			}
		}()
	}
	wg.Wait()

	copies := 0
	for _, b := range uc.List(ctx) {
		if b.URL == "https://go.dev" {
			copies++
		}
	}
	assert.Equal(t, 1, copies)
	assert.Equal(t, ids[0], ids[1], "both callers get the same bookmark")
}

func TestManageBookmarksUseCase_Add_SaveErrorLeavesListUnchanged(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com"}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	favicons.EXPECT().ResolveSmart(mock.Anything, mock.Anything, 32).Return(testIcon)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	_, err := uc.Add(ctx, "B", "https://b.com")
	require.Error(t, err)

	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, entity.BookmarkID("a"), list[0].ID)
}

func TestManageBookmarksUseCase_Remove_DeleteErrorKeepsBookmark(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{
		{ID: "a", URL: "https://a.com"},
		{ID: "b", URL: "https://b.com"},
	}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	repo.EXPECT().Delete(mock.Anything, entity.BookmarkID("a")).Return(errors.New("locked"))

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	err := uc.Remove(ctx, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete bookmark")

	list := uc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, entity.BookmarkID("a"), list[0].ID)
}

func TestManageBookmarksUseCase_Remove_SeedErrorRestoresList(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	// Defaults are not yet stored, so Remove seeds the store with the rest.
	repo.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	repo.EXPECT().Delete(mock.Anything, entity.BookmarkID("1")).Return(nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)
	before := uc.List(ctx)

	require.Error(t, uc.Remove(ctx, "1"))
	assert.Len(t, uc.List(ctx), len(before))
}

func TestManageBookmarksUseCase_RecordVisit_SaveErrorKeepsCount(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return([]*entity.Bookmark{{ID: "a", URL: "https://a.com", VisitCount: 1}}, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).RunAndReturn(annotate)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	_, err := uc.RecordVisit(ctx, "a")
	require.Error(t, err)
	assert.Equal(t, 1, uc.List(ctx)[0].VisitCount)
}

func TestManageBookmarksUseCase_SetIconSize(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)

	repo.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 64).RunAndReturn(annotate)

	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)
	uc.SetIconSize(64)
	assert.Equal(t, 64, uc.IconSize())

	uc.Load(ctx)
}
