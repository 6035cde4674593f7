package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	auth "autoplate/internal/authService"
	"autoplate/services/auction/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bidBody(plateID uint, amount int64) helpers.PlaceBidRequest {
	return helpers.PlaceBidRequest{PlateID: plateID, Amount: decimal.NewFromInt(amount)}
}

// The canonical auction flow: an admin lists a plate, two users compete,
// each later bid must strictly exceed the current highest.
func TestAuctionFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	_, adminToken := RegisterUser(t, router, "admin", true)
	_, tokenA := RegisterUser(t, router, "user_a", false)
	userB, tokenB := RegisterUser(t, router, "user_b", false)

	deadline := time.Now().UTC().Add(7 * 24 * time.Hour)
	plateID := CreatePlate(t, router, adminToken, "01A777AA", deadline)

	// A opens the bidding at 100
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenA, bidBody(plateID, 100))
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "100.00", data["amount"])

	// A cannot bid on the same plate twice
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenA, bidBody(plateID, 200))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "bid already placed")

	// B cannot undercut the current highest bid
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenB, bidBody(plateID, 50))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "bid amount too low")

	// matching the highest bid is also rejected
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenB, bidBody(plateID, 100))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "bid amount too low")

	// B outbids A
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenB, bidBody(plateID, 150))
	require.Equal(t, http.StatusCreated, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "150.00", data["amount"])
	require.Equal(t, float64(userB), data["user_id"])

	// each user only sees their own bids
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 1)
	require.Equal(t, "150.00", bids[0].(map[string]any)["amount"])
}

// Bids on the protected surface require a live token.
func TestAuthenticationGuards(t *testing.T) {
	router, repo := SetupTestRouter()

	userID, token := RegisterUser(t, router, "alice", false)

	t.Run("no_token", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "missing bearer token")
	})

	t.Run("garbage_token", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", "not.a.token", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "invalid token")
	})

	t.Run("expired_token", func(t *testing.T) {
		// same secret and user set, but tokens come out already expired
		staleSvc := auth.NewAuthService(repo, auth.TokenConfig{Secret: testTokenCfg.Secret, TTL: -time.Minute})
		stale, err := staleSvc.IssueToken(userID)
		require.NoError(t, err)

		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", stale, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "token expired")
	})

	t.Run("valid_token", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("login_round_trip", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/login/", "", helpers.LoginRequest{
			Username: "alice",
			Password: "s3cret",
		})
		require.Equal(t, http.StatusOK, w.Code)
		fresh := resp["data"].(map[string]any)["token"].(string)

		_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", fresh, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong_password", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/login/", "", helpers.LoginRequest{
			Username: "alice",
			Password: "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "invalid username or password")
	})
}

// Plate management is admin-only; reading the catalog is public.
func TestPlateAccessControl(t *testing.T) {
	router, _ := SetupTestRouter()

	_, adminToken := RegisterUser(t, router, "admin", true)
	_, userToken := RegisterUser(t, router, "alice", false)

	deadline := time.Now().UTC().Add(72 * time.Hour)

	t.Run("non_admin_cannot_create", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/plates/", userToken, helpers.PlateCreateRequest{
			PlateNumber: "01A777AA",
			Deadline:    deadline,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, resp["message"], "only admins may manage plates")
	})

	t.Run("anonymous_cannot_create", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/plates/", "", helpers.PlateCreateRequest{
			PlateNumber: "01A777AA",
			Deadline:    deadline,
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	plateID := CreatePlate(t, router, adminToken, "01A777AA", deadline)
	CreatePlate(t, router, adminToken, "10X001XX", deadline.Add(-24*time.Hour))

	t.Run("duplicate_number_rejected", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/plates/", adminToken, helpers.PlateCreateRequest{
			PlateNumber: "01A777AA",
			Deadline:    deadline,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "plate number already exists")
	})

	t.Run("past_deadline_rejected", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/plates/", adminToken, helpers.PlateCreateRequest{
			PlateNumber: "99Z999ZZ",
			Deadline:    time.Now().UTC().Add(-time.Hour),
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "deadline must be in the future")
	})

	t.Run("public_listing_with_filters", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/plates/", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 2)

		resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/plates/?plate_number__contains=777", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		listed := resp["data"].([]any)
		require.Len(t, listed, 1)
		require.Equal(t, "01A777AA", listed[0].(map[string]any)["plate_number"])

		resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/plates/?ordering=deadline", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		listed = resp["data"].([]any)
		require.Equal(t, "10X001XX", listed[0].(map[string]any)["plate_number"])
	})

	t.Run("public_detail", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, fmt.Sprintf("/plates/%d/", plateID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "01A777AA", resp["data"].(map[string]any)["plate_number"])

		_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/plates/999/", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin_archives_plate", func(t *testing.T) {
		inactive := false
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPut, fmt.Sprintf("/plates/%d/", plateID), adminToken, helpers.PlateUpdateRequest{
			PlateNumber: "01A777AA",
			Deadline:    deadline,
			IsActive:    &inactive,
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, false, resp["data"].(map[string]any)["is_active"])

		// archived plates drop out of the listing
		resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/plates/", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)

		// and refuse new bids
		resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", userToken, bidBody(plateID, 100))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "bidding is closed")
	})
}

// Plates with recorded bids cannot be deleted; clean plates can.
func TestPlateDeletion(t *testing.T) {
	router, _ := SetupTestRouter()

	_, adminToken := RegisterUser(t, router, "admin", true)
	_, userToken := RegisterUser(t, router, "alice", false)

	deadline := time.Now().UTC().Add(48 * time.Hour)
	contested := CreatePlate(t, router, adminToken, "01A777AA", deadline)
	clean := CreatePlate(t, router, adminToken, "10X001XX", deadline)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", userToken, bidBody(contested, 100))
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodDelete, fmt.Sprintf("/plates/%d/", contested), adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "plate has existing bids")

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, fmt.Sprintf("/plates/%d/", clean), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, fmt.Sprintf("/plates/%d/", clean), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// A bid's owner can revise or withdraw it before the deadline; nobody else
// can see it at all.
func TestBidOwnership(t *testing.T) {
	router, _ := SetupTestRouter()

	_, adminToken := RegisterUser(t, router, "admin", true)
	_, tokenA := RegisterUser(t, router, "user_a", false)
	_, tokenB := RegisterUser(t, router, "user_b", false)

	deadline := time.Now().UTC().Add(48 * time.Hour)
	plateID := CreatePlate(t, router, adminToken, "01A777AA", deadline)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids/", tokenA, bidBody(plateID, 100))
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := uint(resp["data"].(map[string]any)["id"].(float64))

	t.Run("owner_reads_bid", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, fmt.Sprintf("/bids/%d/", bidID), tokenA, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "100.00", resp["data"].(map[string]any)["amount"])
	})

	t.Run("foreign_bid_is_forbidden", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, fmt.Sprintf("/bids/%d/", bidID), tokenB, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, resp["message"], "no access to this bid")
	})

	t.Run("missing_bid_is_forbidden_too", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/999/", tokenB, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner_updates_bid", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPut, fmt.Sprintf("/bids/%d/", bidID), tokenA, helpers.UpdateBidRequest{
			Amount: decimal.NewFromInt(250),
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "250.00", resp["data"].(map[string]any)["amount"])
	})

	t.Run("stranger_cannot_update", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPut, fmt.Sprintf("/bids/%d/", bidID), tokenB, helpers.UpdateBidRequest{
			Amount: decimal.NewFromInt(999),
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner_withdraws_bid", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodDelete, fmt.Sprintf("/bids/%d/", bidID), tokenA, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "bid withdrawn successfully")

		resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/", tokenA, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 0)
	})
}

// Registration validation and duplicate handling at the HTTP surface.
func TestRegistrationValidation(t *testing.T) {
	router, _ := SetupTestRouter()

	RegisterUser(t, router, "alice", false)

	t.Run("duplicate_username", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/register/", "", helpers.RegisterRequest{
			Username: "alice",
			Email:    "second@example.com",
			Password: "s3cret",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "username already taken")
	})

	t.Run("malformed_email", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/register/", "", helpers.RegisterRequest{
			Username: "bob",
			Email:    "not-an-email",
			Password: "s3cret",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request payload")
	})

	t.Run("health_endpoint", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "ok", w.Body.String())
	})
}
