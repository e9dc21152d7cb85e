package auth

import (
	"os"
	"time"

	"lostandfound/config"
	"lostandfound/dto"
	"lostandfound/logger"
	"lostandfound/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func AuthController(router *gin.Engine, cfg *config.Config, log *logger.Logger) {
	routes := router.Group("/auth")
	{
		routes.POST("/token", func(c *gin.Context) {
			IssueToken(c, cfg, log)
		})
	}
}

// IssueToken exchanges the bot's pre-shared service key for a short-lived
// access token. The key is checked against a bcrypt hash so the clear key
// never lives in the service environment.
func IssueToken(c *gin.Context, cfg *config.Config, log *logger.Logger) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if cfg.ServiceKeyHash == "" {
		log.Error("SERVICE_KEY_HASH is not configured")
		c.JSON(500, gin.H{"error": "Service authentication is not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.ServiceKeyHash), []byte(req.ServiceKey)); err != nil {
		log.Warn("service token rejected", "remote", c.ClientIP())
		c.JSON(401, gin.H{"error": "Invalid service key"})
		return
	}

	token, err := CreateAccessToken("bot")
	if err != nil {
		log.Error("failed to sign access token", "error", err)
		c.JSON(500, gin.H{"error": "Failed to create token", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"access_token": token, "token_type": "Bearer", "expires_in": 1800})
}

func CreateAccessToken(service string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		Service: service,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "lostandfound",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}
