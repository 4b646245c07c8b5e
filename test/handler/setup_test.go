package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/atendemei/painel/internal/config"
	"github.com/atendemei/painel/internal/filestore"
	"github.com/atendemei/painel/internal/handler"
	"github.com/atendemei/painel/internal/mail"
	"github.com/atendemei/painel/internal/middleware"
	"github.com/atendemei/painel/internal/repo"
	"github.com/atendemei/painel/internal/resetcode"
	"github.com/atendemei/painel/internal/service"
	"github.com/atendemei/painel/internal/session"
	"github.com/atendemei/painel/test/testutil"
)

type noopSender struct{}

func (noopSender) Send(msg *mail.Message) error {
	return nil
}

type fixture struct {
	router http.Handler
	codes  *resetcode.Store
}

const (
	adminUser     = "atendemei"
	adminPassword = "panel-secret"
	adminEmail    = "contato@example.com"
)

func setupRouter(t *testing.T) (*fixture, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(conn)
	postRepo := repo.NewPostRepo(conn)

	sessions := session.NewStore(16, time.Hour)
	codes := resetcode.NewStore()

	tmpDir, err := os.MkdirTemp("", "painel-upload-*")
	require.NoError(t, err)
	store, err := filestore.New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": tmpDir},
	})
	require.NoError(t, err)

	authService := service.NewAuthService(userRepo, sessions, []byte("test-secret"), time.Hour)
	require.NoError(t, authService.SeedAdmin(context.Background(), config.AdminConfig{
		Username: adminUser,
		Password: adminPassword,
		Email:    adminEmail,
	}))
	postService := service.NewPostService(postRepo, store)
	resetService := service.NewResetService(userRepo, codes, noopSender{})
	contactService := service.NewContactService(noopSender{}, config.MailConfig{ContactTo: "site@example.com"})

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		Posts:         handler.NewPostHandler(postService),
		Reset:         handler.NewResetHandler(resetService),
		Contact:       handler.NewContactHandler(contactService),
		Uploads:       handler.NewUploadHandler(store),
		Authenticator: authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return &fixture{router: engine, codes: codes}, func() {
		cleanup()
		_ = os.RemoveAll(tmpDir)
	}
}

func (f *fixture) postJSON(t *testing.T, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func (f *fixture) login(t *testing.T, username, passwd string) *http.Cookie {
	t.Helper()
	resp := f.postJSON(t, "/api/login", map[string]string{"username": username, "password": passwd}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
