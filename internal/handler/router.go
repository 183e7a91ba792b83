package handler

import (
	"net/http"

	"clinic-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups every endpoint served by the API
type Handlers struct {
	Auth    *AuthHandler
	Doctor  *DoctorHandler
	Patient *PatientHandler
	Mapping *MappingHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the API on r. metrics is served on /metrics when not nil.
func RegisterRoutes(r *gin.Engine, h Handlers, metrics http.Handler) {
	r.GET("/health", h.Health.Health)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
	}

	// Everything else requires a valid access token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())

	doctors := protected.Group("/doctors")
	{
		doctors.GET("", h.Doctor.GetAllDoctors)
		doctors.POST("", h.Doctor.CreateDoctor)
		doctors.GET("/:id", h.Doctor.GetDoctor)
		doctors.PUT("/:id", h.Doctor.UpdateDoctor)
		doctors.PATCH("/:id", h.Doctor.UpdateDoctor)
		doctors.DELETE("/:id", h.Doctor.DeleteDoctor)
	}

	patients := protected.Group("/patients")
	{
		patients.GET("", h.Patient.GetPatients)
		patients.POST("", h.Patient.CreatePatient)
		patients.GET("/:id", h.Patient.GetPatient)
		patients.PUT("/:id", h.Patient.UpdatePatient)
		patients.PATCH("/:id", h.Patient.UpdatePatient)
		patients.DELETE("/:id", h.Patient.DeletePatient)
	}

	mappings := protected.Group("/mappings")
	{
		mappings.GET("", h.Mapping.GetMappings)
		mappings.POST("", h.Mapping.CreateMapping)
		mappings.GET("/:id", h.Mapping.GetMapping)
		mappings.PATCH("/:id", h.Mapping.UpdateMapping)
		mappings.DELETE("/:id", h.Mapping.DeleteMapping)
		mappings.GET("/patient/:patient_id", h.Mapping.GetPatientMappings)
		mappings.GET("/patient/:patient_id/history", h.Mapping.GetPatientMappingHistory)
	}
}
