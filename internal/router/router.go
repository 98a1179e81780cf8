package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-admin/internal/blobstore"
	"employee-admin/internal/config"
	"employee-admin/internal/handlers"
	"employee-admin/internal/logger"
	"employee-admin/internal/metrics"
	"employee-admin/internal/middleware"
	"employee-admin/internal/service"
	"employee-admin/internal/store"
)

// Setup wires stores, services, handlers and middleware onto the
// engine.
func Setup(r *gin.Engine, pool *pgxpool.Pool, blobs *blobstore.Client, cfg config.AppConfig) {
	employees := service.NewEmployeeService(
		store.NewEmployeeStore(pool),
		blobs,
		logger.Get().Named("employee"),
	)
	auth := service.NewAuthService(store.NewCredentialStore(pool), cfg.JWTSecret)

	eh := handlers.NewEmployeeHandler(employees, logger.Get().Named("http"))
	ah := handlers.NewAuthHandler(auth, logger.Get().Named("auth"))
	gate := middleware.NewSessionGate(auth)

	r.Use(logger.RequestLogger(), metrics.Middleware())

	// health also verifies DB connectivity
	r.GET("/health", func(c *gin.Context) {
		var one int
		if err := pool.QueryRow(c.Request.Context(), "select 1").Scan(&one); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	r.POST("/login", gate.RedirectIfAuthenticated(), ah.Login)
	r.GET("/logout", ah.Logout)

	protected := r.Group("/", gate.RequireSession())
	{
		protected.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Employee admin API", "userName": c.GetString("userName")})
		})
		protected.GET("/employees", eh.ListEmployees)
		protected.GET("/employees/:id", eh.GetEmployee)
		protected.POST("/employees", eh.CreateEmployee)
		protected.PUT("/employees/:id", eh.UpdateEmployee)
		protected.PUT("/employees/:id/:status", eh.UpdateStatus)
		protected.DELETE("/employees/:id", eh.DeleteEmployee)
	}
}
