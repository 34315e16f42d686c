package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRoleAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		role string
		want int
	}{
		{"admin permitido", "admin", http.StatusOK},
		{"staff negado", "staff", http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(ctx *gin.Context) { ctx.Set("user_role", c.role) })
			r.PUT("/config/rates", RoleAuthMiddleware("admin"), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/config/rates", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != c.want {
				t.Errorf("status = %d, esperado %d", w.Code, c.want)
			}
		})
	}
}

func TestRoleAuthMiddlewareSemPapelNoContexto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.PUT("/config/rates", RoleAuthMiddleware("admin"), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/config/rates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401", w.Code)
	}
}
