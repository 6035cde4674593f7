package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "autoplate/internal/authService"
	bidding "autoplate/internal/biddingService"
	plates "autoplate/internal/plateService"
	"autoplate/internal/repository"
	"autoplate/internal/server"
	"autoplate/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testTokenCfg = auth.TokenConfig{Secret: "integration-secret", TTL: time.Minute}

// SetupTestRouter wires the full HTTP stack over an in-memory repository.
// The repo is returned so tests can issue tokens against the same user set.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	authSvc := auth.NewAuthService(repo, testTokenCfg)
	plateSvc := plates.NewPlateService(repo)
	biddingSvc := bidding.NewBiddingService(repo)

	router := server.SetupRouter(authSvc, plateSvc, biddingSvc)
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope. An empty token skips the auth header.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && json.Valid(w.Body.Bytes()) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterUser registers a user through the API and returns its id and token.
func RegisterUser(t *testing.T, router *gin.Engine, username string, isAdmin bool) (uint, string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/register/", "", helpers.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret",
		IsAdmin:  isAdmin,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return uint(data["id"].(float64)), data["token"].(string)
}

// CreatePlate creates a listing through the API and returns its id.
func CreatePlate(t *testing.T, router *gin.Engine, adminToken, number string, deadline time.Time) uint {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/plates/", adminToken, helpers.PlateCreateRequest{
		PlateNumber: number,
		Description: "integration listing",
		Deadline:    deadline,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return uint(data["id"].(float64))
}
