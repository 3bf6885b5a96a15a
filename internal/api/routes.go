package api

import (
	"github.com/gin-gonic/gin"

	"github.com/celerix-dev/celerix-directory/internal/auth"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// NewRouter assembles the full HTTP surface. Login and health are public;
// everything under /api/users requires a verified principal, and all
// operations except fetch-by-id additionally require the admin role.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.POST("/auth/login", h.Login)

		users := apiGroup.Group("/users", auth.RequireAuth(h.Tokens))
		{
			users.GET("/all", auth.RequireRole(schema.RoleAdmin), h.ListAll)
			users.GET("", auth.RequireRole(schema.RoleAdmin), h.ListPaged)
			users.POST("", auth.RequireRole(schema.RoleAdmin), h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.DELETE("/:id", auth.RequireRole(schema.RoleAdmin), h.DeleteUser)
		}
	}

	return r
}
