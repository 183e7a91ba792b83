package handler

import (
	"net/http"

	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PatientHandler serves the caller's own patients only
type PatientHandler struct {
	patientService *service.PatientService
	log            zerolog.Logger
}

func NewPatientHandler(patientService *service.PatientService, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		log:            log,
	}
}

func (h *PatientHandler) GetPatients(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	patients, err := h.patientService.GetPatients(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Patients retrieved successfully", gin.H{
		"count":    len(patients),
		"patients": NewPatientResponses(patients),
	})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatientByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Patient retrieved successfully", gin.H{
		"patient": NewPatientResponse(patient),
	})
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	const label = "Patient creation failed"

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.PatientInput
	if !bindJSON(c, &input, label) {
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, h.log, err, label)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Patient created successfully", gin.H{
		"patient": NewPatientResponse(patient),
	})
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	const label = "Patient update failed"

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}

	var input service.PatientInput
	if !bindJSON(c, &input, label) {
		return
	}

	patient, err := h.patientService.UpdatePatient(c.Request.Context(), userID, id, input)
	if err != nil {
		respondError(c, h.log, err, label)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Patient updated successfully", gin.H{
		"patient": NewPatientResponse(patient),
	})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}

	if err := h.patientService.DeletePatient(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Patient deleted successfully")
}
