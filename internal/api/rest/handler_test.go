package rest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofcapsule/pc-anchor/internal/api/shared/dto"
	apierrors "github.com/proofcapsule/pc-anchor/internal/api/shared/errors"
	"github.com/proofcapsule/pc-anchor/internal/mocks"
)

const (
	testWallet = "0x1234567890123456789012345678901234567890"
	testHash   = "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)
	router := gin.New()
	SetupRoutes(router, NewHandler(exec))
	return router, exec
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateCapsuleEndpoint(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			CreateCapsule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req dto.CreateCapsuleRequest) (*dto.CapsuleResponse, error) {
				assert.Equal(t, testWallet, req.WalletAddress)
				return &dto.CapsuleResponse{ID: 1, TokenID: 42, WalletAddress: testWallet, ContentHash: testHash}, nil
			})

		w := doJSON(router, http.MethodPost, "/api/v1/capsules", gin.H{
			"wallet_address": testWallet,
			"content":        base64.StdEncoding.EncodeToString([]byte("payload")),
			"filename":       "payload.bin",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["token_id"])
	})

	t.Run("duplicate content hash returns 409", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			CreateCapsule(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewConflictError("Content hash is already anchored"))

		w := doJSON(router, http.MethodPost, "/api/v1/capsules", gin.H{
			"wallet_address": testWallet,
			"content_hash":   testHash,
			"token_id":       9,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "conflict", errBody["code"])
	})

	t.Run("malformed wallet returns 422 without reaching the executor", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodPost, "/api/v1/capsules", gin.H{
			"wallet_address": "nope",
			"content_hash":   testHash,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeEnvelope(t, w)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "validation_failed", errBody["code"])
	})

	t.Run("missing content and hash returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodPost, "/api/v1/capsules", gin.H{
			"wallet_address": testWallet,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetCapsuleEndpoint(t *testing.T) {
	t.Run("found returns 200", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			GetCapsule(gomock.Any(), int64(7)).
			Return(&dto.CapsuleResponse{ID: 7, TokenID: 42}, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/capsules/7", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("absent returns 404", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().GetCapsule(gomock.Any(), int64(7)).Return(nil, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/capsules/7", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/capsules/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListCapsulesEndpoint(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			ListCapsules(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, wallet *string, isPublic *bool, limit *int, offset *uint64) (*dto.CapsuleListResponse, error) {
				require.NotNil(t, wallet)
				assert.Equal(t, testWallet, *wallet)
				require.NotNil(t, isPublic)
				assert.True(t, *isPublic)
				assert.Equal(t, 5, *limit)
				assert.Equal(t, uint64(10), *offset)
				return &dto.CapsuleListResponse{Capsules: []dto.CapsuleResponse{}, Total: 0}, nil
			})

		path := fmt.Sprintf("/api/v1/capsules?wallet=%s&public=true&limit=5&offset=10", testWallet)
		w := doJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed wallet filter returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/capsules?wallet=nope", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUpdateCapsuleEndpoint(t *testing.T) {
	t.Run("applies the patch", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			UpdateCapsule(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ int64, req dto.UpdateCapsuleRequest) (*dto.CapsuleResponse, error) {
				require.NotNil(t, req.Description)
				assert.Equal(t, "updated", *req.Description)
				return &dto.CapsuleResponse{ID: 7}, nil
			})

		w := doJSON(router, http.MethodPatch, "/api/v1/capsules/7", gin.H{"description": "updated"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty patch returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodPatch, "/api/v1/capsules/7", gin.H{})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("absent capsule returns 404", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().UpdateCapsule(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)

		w := doJSON(router, http.MethodPatch, "/api/v1/capsules/7", gin.H{"is_public": true})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVerifyCapsuleEndpoint(t *testing.T) {
	t.Run("found returns 201 with verification and capsule", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			VerifyCapsule(gomock.Any(), gomock.Any()).
			Return(&dto.VerifyCapsuleResponse{
				Found:        true,
				ContentHash:  testHash,
				Verification: &dto.VerificationResponse{ID: 1, CapsuleID: 5},
			}, nil)

		w := doJSON(router, http.MethodPost, "/api/v1/verify", gin.H{
			"content_hash":     testHash,
			"verifier_address": testWallet,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["found"])
	})

	t.Run("miss returns 404 with the outcome in the body", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			VerifyCapsule(gomock.Any(), gomock.Any()).
			Return(&dto.VerifyCapsuleResponse{Found: false, ContentHash: testHash}, nil)

		w := doJSON(router, http.MethodPost, "/api/v1/verify", gin.H{
			"content_hash":     testHash,
			"verifier_address": testWallet,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeEnvelope(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, false, data["found"])
		assert.Equal(t, testHash, data["content_hash"])
	})

	t.Run("missing verifier returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodPost, "/api/v1/verify", gin.H{
			"content_hash": testHash,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestListVerificationsEndpoint(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().
		ListVerifications(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, capsuleID *int64, verifier *string, _ *int, _ *uint64) (*dto.VerificationListResponse, error) {
			require.NotNil(t, capsuleID)
			assert.Equal(t, int64(5), *capsuleID)
			assert.Nil(t, verifier)
			return &dto.VerificationListResponse{Verifications: []dto.VerificationResponse{}}, nil
		})

	w := doJSON(router, http.MethodGet, "/api/v1/verify?capsule_id=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAnalyticsEndpoint(t *testing.T) {
	t.Run("global by default", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			GetGlobalAnalytics(gomock.Any()).
			Return(&dto.GlobalAnalyticsResponse{Date: "2026-08-28", TotalCapsules: 10}, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/analytics", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("per-user stats", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			GetUserAnalytics(gomock.Any(), testWallet, true).
			Return(&dto.UserStatsResponse{WalletAddress: testWallet}, nil)

		path := fmt.Sprintf("/api/v1/analytics?type=user&wallet=%s&on_chain=true", testWallet)
		w := doJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user type without wallet returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/analytics?type=user", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown type returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/analytics?type=weekly", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestExportUserEndpoint(t *testing.T) {
	t.Run("absent user returns 404", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().ExportUser(gomock.Any(), testWallet).Return(nil, nil)

		w := doJSON(router, http.MethodGet, "/api/v1/users/export?wallet="+testWallet, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing wallet returns 400", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/v1/users/export", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("returns the deletion summary", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().
			DeleteUser(gomock.Any(), testWallet).
			Return(&dto.DeleteUserResponse{WalletAddress: testWallet, DeletedCapsules: 3}, nil)

		w := doJSON(router, http.MethodDelete, "/api/v1/users", gin.H{"wallet_address": testWallet})
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["deleted_capsules"])
	})

	t.Run("malformed wallet returns 422", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doJSON(router, http.MethodDelete, "/api/v1/users", gin.H{"wallet_address": "nope"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHealthCheckEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "ok", body["status"])
}
