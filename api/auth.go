package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type OperatorJWT struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

func parseOperatorJWT(jwtStr string, decodeToken string) (*OperatorJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse jwt: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid jwt")
	}

	claimBytes, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}
	out := OperatorJWT{}
	err = json.Unmarshal(claimBytes, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &out, nil
}

// adminAuthMiddleware gates mutating routes behind a bearer token whose
// subject is on the operator allow-list.
func (m ApiHandler) adminAuthMiddleware(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	jwtStr := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtStr == "" || jwtStr == authHeader {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), ctx, 401)
		return
	}

	claims, err := parseOperatorJWT(jwtStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to authenticate: %w", err), ctx, 401)
		return
	}

	for _, email := range m.AdminEmails {
		if strings.EqualFold(email, claims.Subject) {
			ctx.Next()
			return
		}
	}

	returnErrorJsonCode(fmt.Errorf("subject %s is not an operator", claims.Subject), ctx, 403)
}
