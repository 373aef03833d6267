package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := SignAdminToken("testsecret", time.Hour)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	claims, err := ParseAdminToken("testsecret", token)
	if err != nil || claims.Role != AdminRole {
		t.Fatalf("expected admin claims, got %+v (%v)", claims, err)
	}
	if _, err := ParseAdminToken("othersecret", token); err == nil {
		t.Fatal("expected wrong secret to fail")
	}
	if _, err := SignAdminToken("", time.Hour); err == nil {
		t.Fatal("expected empty secret to be refused")
	}
}

func TestParseAdminTokenRejectsOtherRoles(t *testing.T) {
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{Role: "user"}).SignedString([]byte("testsecret"))
	if _, err := ParseAdminToken("testsecret", raw); err == nil {
		t.Fatal("expected non-admin role to fail")
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, AdminAuth("testsecret"))
	token, _ := SignAdminToken("testsecret", time.Hour)

	cases := []struct {
		header string
		want   int
	}{
		{"", http.StatusUnauthorized},
		{"Bearer nonsense", http.StatusUnauthorized},
		{"Basic " + token, http.StatusUnauthorized},
		{"Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.header, tc.want, rec.Code)
		}
	}
}
