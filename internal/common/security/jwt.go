package security

import (
	"net/http"
	"time"

	"study_tracker/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
)

// SessionCookieName is "jwt" so that jwtauth's default cookie token finder
// picks the session up without a custom extractor.
const SessionCookieName = "jwt"

var TokenAuth *jwtauth.JWTAuth

func InitSessions() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.SessionKey, nil)
}

// NewSessionToken mints the session JWT. userID is empty for pure admin
// sessions, which are not backed by a database user.
func NewSessionToken(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := map[string]interface{}{
		"user_id":  userID,
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(config.AppConfig.SessionExp).Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(config.AppConfig.SessionExp),
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func GetUserIDFromClaims(claims map[string]interface{}) (string, bool) {
	id, ok := claims["user_id"].(string)
	return id, ok && id != ""
}

func GetIsAdminFromClaims(claims map[string]interface{}) bool {
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}
