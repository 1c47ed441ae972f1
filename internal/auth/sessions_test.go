package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookclub/internal/config"
	"github.com/mrlokans/bookclub/internal/entities"
)

func setupSessionManager(t *testing.T) *SessionManager {
	dbPath := "./test_sessions_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)

	sm, err := NewSessionManager(sqlDB, config.Auth{SessionLifetime: time.Hour})
	require.NoError(t, err)
	return sm
}

func setupSessionRouter(t *testing.T) (*gin.Engine, *SessionManager) {
	gin.SetMode(gin.TestMode)
	sm := setupSessionManager(t)

	user := &entities.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.POST("/signin", func(c *gin.Context) {
		require.NoError(t, sm.CreateSession(c.Request, user))
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		if !sm.IsAuthenticated(c.Request) {
			c.String(http.StatusUnauthorized, "anonymous")
			return
		}
		c.String(http.StatusOK, sm.GetUsername(c.Request))
	})
	router.POST("/signout", func(c *gin.Context) {
		require.NoError(t, sm.DestroySession(c.Request))
		c.Status(http.StatusNoContent)
	})

	return router, sm
}

func TestSessionLoadSave_CookieWrittenOnEmptyBody(t *testing.T) {
	router, _ := setupSessionRouter(t)

	// 204 with no body: the cookie must still be committed
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "session cookie should be set")
	assert.Equal(t, "session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestSessionLoadSave_RoundTrip(t *testing.T) {
	router, _ := setupSessionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	router.ServeHTTP(w, req)
	require.NotEmpty(t, w.Result().Cookies())
	sessionCookie := w.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(sessionCookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestSessionLoadSave_DestroyInvalidatesToken(t *testing.T) {
	router, _ := setupSessionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	router.ServeHTTP(w, req)
	require.NotEmpty(t, w.Result().Cookies())
	sessionCookie := w.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(sessionCookie)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The old token no longer authenticates
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(sessionCookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionManager_Accessors(t *testing.T) {
	router, sm := setupSessionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	router.ServeHTTP(w, req)
	require.NotEmpty(t, w.Result().Cookies())
	sessionCookie := w.Result().Cookies()[0]

	router.GET("/inspect", func(c *gin.Context) {
		assert.Equal(t, uint(7), sm.GetUserID(c.Request))
		assert.Equal(t, "alice", sm.GetUsername(c.Request))
		assert.Equal(t, "alice@example.com", sm.GetEmail(c.Request))
		c.Status(http.StatusOK)
	})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/inspect", nil)
	req.AddCookie(sessionCookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
