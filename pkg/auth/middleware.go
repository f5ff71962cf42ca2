package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// BearerPrefix precedes the shared secret in the Authorization header.
const BearerPrefix = "Bearer "

// RequireBearerToken は管理者用ミドルウェア。Authorization ヘッダーが
// "Bearer <token>" と完全一致する場合のみ next を呼ぶ。
//
// This is a static shared secret: no identity, expiry or rotation. An empty
// token rejects every request.
func RequireBearerToken(token string) func(http.Handler) http.Handler {
	expected := []byte(BearerPrefix + token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || !matches(r.Header.Get("Authorization"), expected) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matches(header string, expected []byte) bool {
	return subtle.ConstantTimeCompare([]byte(header), expected) == 1
}
