package server

import (
	"net/http"
	"time"

	"complaint-tracker/internal/config"
	"complaint-tracker/internal/handlers"
	"complaint-tracker/internal/middleware"
	"complaint-tracker/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionName = "complaint_session"

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowedOrigins()
		cc.AllowCredentials = true
	}
	return cc
}

func NewRouter(cfg *config.Config, h *handlers.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(cfg)))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 86400 * 7, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.InjectSession())

	// ADMIN / DIRECTORY
	r.GET("/admin", h.ListAdmins)
	r.GET("/faculty/count", h.FacultyCount)
	r.GET("/workers/:role", h.WorkersByRole)
	r.GET("/categories", h.Categories)

	// AUTH
	login := r.Group("/login")
	for _, role := range []models.UserRole{models.RoleFaculty, models.RoleIncharge, models.RoleWorker, models.RoleAdmin} {
		login.POST("/"+role.String(), h.Login(role))
	}
	r.POST("/logout", h.Logout)
	r.GET("/session", middleware.RequireAuth(), h.Session)
	r.PUT("/change-password/:userType/:userId", h.ChangePassword)

	// COMPLAINTS
	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints", h.ListInchargeComplaints)
	r.GET("/complaints/all", h.ListAllComplaints)
	r.GET("/complaints/worker/:name", h.ListWorkerComplaints)
	r.GET("/complaints/faculty/:faculty_id", h.ListFacultyComplaints)
	r.PUT("/complaints/:id/assign", h.AssignWorker)
	r.PUT("/complaints/:id/status", h.UpdateStatus)

	// HEALTHCHECK
	r.GET("/health", h.Health)

	return r
}
