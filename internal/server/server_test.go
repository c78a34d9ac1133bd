package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/tempo/internal/application/port/mocks"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/domain/entity"
	repomocks "github.com/bnema/tempo/internal/domain/repository/mocks"
	"github.com/bnema/tempo/internal/logging"
	"github.com/bnema/tempo/internal/messaging"
	"github.com/bnema/tempo/internal/server"
)

const testIcon = "https://icons.test/icon.png"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fixture struct {
	srv      *server.Server
	repo     *repomocks.MockBookmarkRepository
	favicons *portmocks.MockFaviconResolver
}

func newFixture(t *testing.T, origins ...string) fixture {
	t.Helper()
	ctx := testContext()

	repo := repomocks.NewMockBookmarkRepository(t)
	favicons := portmocks.NewMockFaviconResolver(t)
	uc := usecase.NewManageBookmarksUseCase(repo, nil, favicons, 32)

	router := messaging.NewRouter()
	require.NoError(t, messaging.RegisterHandlers(ctx, router, messaging.Config{
		BookmarksUC: uc,
		Favicons:    favicons,
		IconSize:    uc.IconSize,
	}))

	srv := server.New(ctx, server.Config{
		Addr:         "127.0.0.1:0",
		AllowOrigins: origins,
		Router:       router,
		BookmarksUC:  uc,
		Favicons:     favicons,
		IconSize:     uc.IconSize,
	})
	return fixture{srv: srv, repo: repo, favicons: favicons}
}

func (f fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := f.do(req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestServer_Message(t *testing.T) {
	f := newFixture(t)
	f.favicons.EXPECT().Resolve(mock.Anything, "https://example.com", 32).Return(testIcon)

	body := `{"action":"resolveFavicon","requestId":"r1","url":"https://example.com"}`
	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"requestId":"r1","success":true,"data":{"url":"https://example.com","favicon":"`+testIcon+`"}}`,
		rec.Body.String())
}

func TestServer_MessageUnknownAction(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(`{"action":"x","requestId":"r2"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp messaging.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "r2", resp.RequestID)
	assert.Contains(t, resp.Error, "unknown action")
}

func TestServer_MessageEmptyBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/message", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Bookmarks(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	f.favicons.EXPECT().ResolveBatch(mock.Anything, mock.Anything, 32).
		RunAndReturn(func(_ context.Context, items []*entity.Bookmark, _ int) []*entity.Bookmark {
			for _, b := range items {
				b.Favicon = testIcon
			}
			return items
		})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []entity.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 5)
	assert.Equal(t, "GitHub", list[0].Title)
	assert.Equal(t, testIcon, list[0].Favicon)
}

func TestServer_Favicon(t *testing.T) {
	f := newFixture(t)
	f.favicons.EXPECT().Resolve(mock.Anything, "https://example.com", 64).Return(testIcon)
	f.favicons.EXPECT().ResolveSmart(mock.Anything, "https://github.com", 32).Return("https://github.com/favicon.ico")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/favicon?url=https://example.com&size=64", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://example.com","favicon":"`+testIcon+`"}`, rec.Body.String())

	smart := f.do(httptest.NewRequest(http.MethodGet, "/api/favicon?url=https://github.com&smart=true", nil))
	require.Equal(t, http.StatusOK, smart.Code)
	assert.Contains(t, smart.Body.String(), "https://github.com/favicon.ico")
}

func TestServer_FaviconBadRequest(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/api/favicon", "/api/favicon?url=x.com&size=abc", "/api/favicon?url=x.com&size=-1"} {
		rec := f.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestServer_CORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		f := newFixture(t, "*")

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := f.do(req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000")

		allowed := httptest.NewRequest(http.MethodGet, "/health", nil)
		allowed.Header.Set("Origin", "http://localhost:3000")
		rec := f.do(allowed)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

		denied := httptest.NewRequest(http.MethodGet, "/health", nil)
		denied.Header.Set("Origin", "http://evil.test")
		rec = f.do(denied)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	f := newFixture(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- f.srv.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/health", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test probe
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
