package handler

import (
	"errors"
	"net/http"

	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const labelAssignFailed = "Assignment failed"

type MappingHandler struct {
	mappingService *service.MappingService
	log            zerolog.Logger
}

func NewMappingHandler(mappingService *service.MappingService, log zerolog.Logger) *MappingHandler {
	return &MappingHandler{
		mappingService: mappingService,
		log:            log,
	}
}

// CreateMapping assigns a doctor to one of the caller's patients
func (h *MappingHandler) CreateMapping(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.MappingInput
	if !bindJSON(c, &input, labelAssignFailed) {
		return
	}

	mapping, err := h.mappingService.CreateMapping(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, h.log, err, labelAssignFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Doctor assigned to patient successfully", gin.H{
		"mapping": NewMappingResponse(mapping),
	})
}

// GetMappings lists the active assignments of the caller's patients
func (h *MappingHandler) GetMappings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	mappings, err := h.mappingService.GetMappings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mappings retrieved successfully", gin.H{
		"count":    len(mappings),
		"mappings": NewMappingResponses(mappings),
	})
}

func (h *MappingHandler) GetMapping(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "mapping")
	if !ok {
		return
	}

	mapping, err := h.mappingService.GetMappingByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mapping retrieved successfully", gin.H{
		"mapping": NewMappingResponse(mapping),
	})
}

// UpdateMapping edits the notes of an assignment; patient and doctor are fixed once assigned
func (h *MappingHandler) UpdateMapping(c *gin.Context) {
	const label = "Mapping update failed"

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "mapping")
	if !ok {
		return
	}

	var input service.MappingNotesInput
	if !bindJSON(c, &input, label) {
		return
	}

	mapping, err := h.mappingService.UpdateMappingNotes(c.Request.Context(), userID, id, input)
	if err != nil {
		respondError(c, h.log, err, label)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mapping updated successfully", gin.H{
		"mapping": NewMappingResponse(mapping),
	})
}

// DeleteMapping deactivates an assignment; the row stays in the patient's history
func (h *MappingHandler) DeleteMapping(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "mapping")
	if !ok {
		return
	}

	mapping, err := h.mappingService.DeactivateMapping(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Doctor removed from patient successfully", gin.H{
		"mapping": NewMappingResponse(mapping),
	})
}

// GetPatientMappings lists the doctors currently assigned to one patient
func (h *MappingHandler) GetPatientMappings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	patientID, ok := parseID(c, "patient_id", "patient")
	if !ok {
		return
	}

	patient, mappings, err := h.mappingService.GetPatientMappings(c.Request.Context(), userID, patientID)
	if err != nil {
		h.patientLookupError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Patient mappings retrieved successfully", gin.H{
		"patient_name":  patient.Name,
		"doctors_count": len(mappings),
		"mappings":      NewMappingResponses(mappings),
	})
}

// GetPatientMappingHistory lists every assignment of one patient, inactive ones included
func (h *MappingHandler) GetPatientMappingHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	patientID, ok := parseID(c, "patient_id", "patient")
	if !ok {
		return
	}

	patient, mappings, err := h.mappingService.GetPatientMappingHistory(c.Request.Context(), userID, patientID)
	if err != nil {
		h.patientLookupError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Patient mapping history retrieved successfully", gin.H{
		"patient_name": patient.Name,
		"count":        len(mappings),
		"mappings":     NewMappingResponses(mappings),
	})
}

// patientLookupError does not tell a missing patient from someone else's
func (h *MappingHandler) patientLookupError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPatientNotFound) {
		utils.ErrorResponse(c, http.StatusNotFound, "Patient not found or access denied",
			"No patient of yours matches the given id")
		return
	}
	respondError(c, h.log, err, "")
}
