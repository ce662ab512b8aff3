package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/proactivefit/backend/internal/models"
	"github.com/proactivefit/backend/internal/service"
)

const testAdminPassword = "test-admin-password"

// setupTestRouter assembles the API against an isolated in-memory database
// and an in-memory plan store.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.SupportTopic{},
		&models.SupportPost{},
		&models.GalleryImage{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	supportService := service.NewSupportService(db)
	planService := service.NewPlanService(service.NewMemoryPlanStore())
	authService := service.NewAuthService("test-secret", string(hash))
	galleryService := service.NewGalleryService(db)

	router := gin.New()
	apiGroup := router.Group("/api")
	NewSupportHandler(supportService).RegisterRoutes(apiGroup)
	NewPlanHandler(planService).RegisterRoutes(apiGroup)
	NewCalculatorHandler().RegisterRoutes(apiGroup)
	NewWorkoutsHandler().RegisterRoutes(apiGroup)
	NewAuthHandler(authService).RegisterRoutes(apiGroup)
	NewGalleryHandler(galleryService, authService).RegisterRoutes(apiGroup)

	return router
}

// doJSON performs a request with an optional JSON body and optional bearer
// token, returning the recorded response.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
