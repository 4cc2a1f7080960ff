package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	hash, err := HashPassword("fighting2026")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	handler := NewHandler("Jolin0223", hash)
	handler.RegisterRoutes(r.Group("/auth"))

	r.GET("/protected", AdminRequired(), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

func TestPasswordHashing(t *testing.T) {
	password := "fighting2026"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == password {
		t.Error("Hash should not equal plain password")
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword should return true for correct password")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Error("CheckPassword should return false for incorrect password")
	}
}

func TestJWTToken(t *testing.T) {
	token, err := GenerateToken("Jolin0223")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.Username != "Jolin0223" {
		t.Errorf("Expected username Jolin0223, got %s", claims.Username)
	}
}

func TestInvalidToken(t *testing.T) {
	_, err := ValidateToken("invalid-token")
	if err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestExpiredToken(t *testing.T) {
	claims := &Claims{
		Username: "Jolin0223",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "vibefolio",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTSecret())
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	router := setupTestRouter(t)

	body := LoginRequest{Username: "Jolin0223", Password: "fighting2026"}
	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	json.Unmarshal(resp.Body.Bytes(), &response)

	if !response.Success || response.Token == "" {
		t.Error("Expected success and a token in the response")
	}

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == CookieName {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("Expected auth_token cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("Expected auth_token cookie to be HttpOnly")
	}
	if _, err := ValidateToken(sessionCookie.Value); err != nil {
		t.Errorf("Cookie should carry a valid token: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTestRouter(t)

	body := LoginRequest{Username: "Jolin0223", Password: "wrongpassword"}
	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

func TestLoginWrongUsername(t *testing.T) {
	router := setupTestRouter(t)

	body := LoginRequest{Username: "someone", Password: "fighting2026"}
	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

func TestGateRejectsMissingToken(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

// The original system let any auth_token cookie through on presence alone.
// The gate here must reject a cookie whose value does not verify.
func TestGateRejectsUnsignedCookie(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "true"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for presence-only cookie, got %d", resp.Code)
	}
}

func TestGateAcceptsValidCookie(t *testing.T) {
	router := setupTestRouter(t)

	token, err := GenerateToken("Jolin0223")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGateAcceptsBearerHeader(t *testing.T) {
	router := setupTestRouter(t)

	token, err := GenerateToken("Jolin0223")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMe(t *testing.T) {
	router := setupTestRouter(t)

	token, _ := GenerateToken("Jolin0223")

	req, _ := http.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response struct {
		Username string `json:"username"`
	}
	json.Unmarshal(resp.Body.Bytes(), &response)

	if response.Username != "Jolin0223" {
		t.Errorf("Expected username Jolin0223, got %s", response.Username)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("POST", "/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == CookieName && cookie.MaxAge < 0 {
			return
		}
	}
	t.Error("Expected auth_token cookie to be cleared")
}
