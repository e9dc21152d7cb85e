// model/token.go
package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the claims carried by service access tokens issued to
// the bot process.
type AccessClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}
