package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/twtrd/twtrd/middleware"
	"github.com/twtrd/twtrd/models"
	"github.com/twtrd/twtrd/repositories"
	"github.com/twtrd/twtrd/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "middleware-test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newAuthTestApp(t *testing.T) (*gin.Engine, *repositories.UserRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:middleware_auth?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	users := repositories.NewUserRepository(db)

	r := gin.New()
	r.GET("/restored", middleware.RestoreUser(users), func(ctx *gin.Context) {
		if user, ok := middleware.CurrentUser(ctx); ok {
			ctx.String(http.StatusOK, user.Username)
			return
		}
		ctx.String(http.StatusOK, "anonymous")
	})
	r.GET("/required", middleware.RequireUser(users), func(ctx *gin.Context) {
		user, _ := middleware.CurrentUser(ctx)
		ctx.String(http.StatusOK, user.Username)
	})
	return r, users, db
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRestoreUserNeverFails(t *testing.T) {
	r, users, _ := newAuthTestApp(t)

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateToken(user.ID, user.Username, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"valid token", token, "alice"},
		{"no token", "", "anonymous"},
		{"garbage token", "not.a.token", "anonymous"},
	}
	for _, tc := range cases {
		resp := get(r, "/restored", tc.token)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.name, resp.Code)
		}
		if resp.Body.String() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, resp.Body.String())
		}
	}
}

func TestRequireUserRejectsInvalidTokens(t *testing.T) {
	r, users, db := newAuthTestApp(t)

	user := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	if err := users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateToken(user.ID, user.Username, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	if resp := get(r, "/required", token); resp.Code != http.StatusOK || resp.Body.String() != "bob" {
		t.Fatalf("expected bob, got %d %q", resp.Code, resp.Body.String())
	}
	if resp := get(r, "/required", ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	if resp := get(r, "/required", "not.a.token"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", resp.Code)
	}

	expired, err := utils.GenerateToken(user.ID, user.Username, -time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if resp := get(r, "/required", expired); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.Code)
	}

	// a token is only proof of identity; the record must still exist
	db.Delete(&models.User{}, user.ID)
	if resp := get(r, "/required", token); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after user deletion, got %d", resp.Code)
	}
}
