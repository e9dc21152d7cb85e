package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostandfound/config"
	"lostandfound/controller/auth"
	"lostandfound/logger"
	"lostandfound/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServer(t *testing.T, serviceKey string) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte(serviceKey), bcrypt.DefaultCost)
	require.NoError(t, err)

	log, err := logger.New("test")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth.AuthController(router, &config.Config{ServiceKeyHash: string(hash)}, log)
	return router
}

func postToken(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/auth/token", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIssueToken(t *testing.T) {
	router := newAuthServer(t, "relief-bot-key")

	w := postToken(t, router, gin.H{"service_key": "relief-bot-key"})
	require.Equal(t, 200, w.Code, w.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, 1800, res.ExpiresIn)

	claims := &model.AccessClaims{}
	token, err := jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "bot", claims.Service)
	assert.Equal(t, "lostandfound", claims.Issuer)
}

func TestIssueTokenWrongKey(t *testing.T) {
	router := newAuthServer(t, "relief-bot-key")

	w := postToken(t, router, gin.H{"service_key": "wrong"})
	assert.Equal(t, 401, w.Code)
}

func TestIssueTokenMissingKey(t *testing.T) {
	router := newAuthServer(t, "relief-bot-key")

	w := postToken(t, router, gin.H{})
	assert.Equal(t, 400, w.Code)
}
