package handler

import (
	"net/http"

	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
	log           zerolog.Logger
}

func NewDoctorHandler(doctorService *service.DoctorService, log zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
		log:           log,
	}
}

// GetAllDoctors lists every doctor
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetAllDoctors(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Doctors retrieved successfully", gin.H{
		"count":   len(doctors),
		"doctors": doctors,
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, ok := parseID(c, "id", "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Doctor retrieved successfully", gin.H{"doctor": doctor})
}

// CreateDoctor registers a doctor; every field is required
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	const label = "Doctor creation failed"

	var input service.DoctorInput
	if !bindJSON(c, &input, label) {
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err, label)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Doctor created successfully", gin.H{"doctor": doctor})
}

// UpdateDoctor writes the supplied fields; PUT and PATCH behave the same
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	const label = "Doctor update failed"

	id, ok := parseID(c, "id", "doctor")
	if !ok {
		return
	}

	var input service.DoctorInput
	if !bindJSON(c, &input, label) {
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.log, err, label)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Doctor updated successfully", gin.H{"doctor": doctor})
}

// DeleteDoctor removes a doctor along with its assignments
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "id", "doctor")
	if !ok {
		return
	}

	if err := h.doctorService.DeleteDoctor(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Doctor deleted successfully")
}
