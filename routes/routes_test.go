package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.PickupRequest{}, &entity.WasteGuideItem{}))

	cfg := &configs.Config{
		Port:             "0",
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		RequireOwnership: true,
		UploadDir:        t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func seedCollector(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("colpass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Username: "collector1",
		Password: string(hash),
		FullName: "Collector One",
		Role:     entity.RoleCollector,
	}).Error)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerResident(t *testing.T, r *gin.Engine, fullName, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"fullName": fullName, "username": username, "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	return data["token"].(string)
}

func validRequestBody() gin.H {
	return gin.H{
		"fullName":  "Alice",
		"wasteType": "WET",
		"quantity":  "S",
		"address":   "12 Oak St",
		"slot":      "Morning",
	}
}

// register → create → track: เส้นทางหลักของ resident
func TestResidentRequestFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	aliceToken := registerResident(t, r, "Alice", "alice")

	w := doJSON(t, r, http.MethodPost, "/requests", aliceToken, validRequestBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "REQUESTED", created["status"])

	w = doJSON(t, r, http.MethodGet, "/requests", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode(t, w)["data"].([]any)
	require.Len(t, mine, 1)

	// คนอื่นต้องไม่เห็นของ alice
	bobToken := registerResident(t, r, "Bob", "bob")
	w = doJSON(t, r, http.MethodGet, "/requests", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])
}

func TestAnonymousCreateRedirectsToLogin(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/requests", "", validRequestBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/auth/login", decode(t, w)["redirect"])

	// draft ไม่ถูกเก็บไว้ที่ไหน
	var count int64
	db.Model(&entity.PickupRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRejectsBadEnum(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerResident(t, r, "Alice", "alice")

	body := validRequestBody()
	body["wasteType"] = "NUCLEAR"
	w := doJSON(t, r, http.MethodPost, "/requests", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollectorEndpointsRoleGate(t *testing.T) {
	r, db := newTestRouter(t)
	seedCollector(t, db)

	aliceToken := registerResident(t, r, "Alice", "alice")

	// resident โดน 403 ตรง middleware
	w := doJSON(t, r, http.MethodGet, "/collector/dashboard", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/collector/requests/1/status", aliceToken, gin.H{"status": "PICKED"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// anonymous โดน 401
	w = doJSON(t, r, http.MethodGet, "/collector/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCollectorLoginRejectsResident(t *testing.T) {
	r, db := newTestRouter(t)
	seedCollector(t, db)
	registerResident(t, r, "Alice", "alice")

	// resident เข้าช่อง collector → ข้อความกลางๆ เหมือนรหัสผิด
	w := doJSON(t, r, http.MethodPost, "/collector/login", "", gin.H{"username": "alice", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decode(t, w)["error"])

	// collector เข้าช่อง resident ก็เหมือนกัน
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"username": "collector1", "password": "colpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decode(t, w)["error"])
}

func TestCollectorDashboardAndStatusUpdate(t *testing.T) {
	r, db := newTestRouter(t)
	seedCollector(t, db)

	aliceToken := registerResident(t, r, "Alice", "alice")
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/requests", aliceToken, validRequestBody())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/collector/login", "", gin.H{"username": "collector1", "password": "colpass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	colToken := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/collector/dashboard", colToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	pickups := data["pickups"].([]any)
	require.Len(t, pickups, 2)
	firstID := strconv.Itoa(int(pickups[0].(map[string]any)["ID"].(float64)))

	w = doJSON(t, r, http.MethodPatch,
		"/collector/requests/"+firstID+"/status", colToken, gin.H{"status": "ASSIGNED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// filter=ASSIGNED เห็นรายการเดียว แต่ counts นับรวมทุก status
	w = doJSON(t, r, http.MethodGet, "/collector/dashboard?status=ASSIGNED", colToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["pickups"].([]any), 1)
	counts := data["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["requested"])
	assert.EqualValues(t, 1, counts["assigned"])
	assert.EqualValues(t, 0, counts["picked"])

	w = doJSON(t, r, http.MethodPatch,
		"/collector/requests/"+firstID+"/status", colToken, gin.H{"status": "DONE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHelperSearch(t *testing.T) {
	r, db := newTestRouter(t)
	seedCollector(t, db)
	require.NoError(t, db.Create(&entity.WasteGuideItem{
		ItemName: "battery", Category: entity.WasteHazard, Instructions: "Hazard bin.",
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/helper?q=BATTERY", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["results"].([]any), 1)

	// collector ถูกพาไป dashboard แทน
	w = doJSON(t, r, http.MethodPost, "/collector/login", "", gin.H{"username": "collector1", "password": "colpass"})
	require.Equal(t, http.StatusOK, w.Code)
	colToken := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/helper?q=BATTERY", colToken, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestHomeStatsVisibility(t *testing.T) {
	r, db := newTestRouter(t)
	seedCollector(t, db)

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Nil(t, data["stats"], "anonymous sees no stats")

	w = doJSON(t, r, http.MethodPost, "/collector/login", "", gin.H{"username": "collector1", "password": "colpass"})
	require.Equal(t, http.StatusOK, w.Code)
	colToken := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/", colToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.NotNil(t, data["stats"])
}

func TestChatbotValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// message ว่าง → 400
	w := doJSON(t, r, http.MethodPost, "/api/chatbot/message", "", gin.H{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ไม่มี API key → 500 พร้อม error message
	w = doJSON(t, r, http.MethodPost, "/api/chatbot/message", "", gin.H{"message": "hello"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])
}
