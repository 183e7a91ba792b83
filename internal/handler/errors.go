package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	labelInternal       = "Internal server error"
	labelPermission     = "Permission denied"
	labelDoctorMissing  = "Doctor not found"
	labelPatientMissing = "Patient not found"
	labelMappingMissing = "Mapping not found"
	labelAuth           = "Authentication failed"
	labelInvalidBody    = "Invalid request body"
)

// respondError maps a service error to its response. label names the failed write
// and is used for validation failures only.
func respondError(c *gin.Context, log zerolog.Logger, err error, label string) {
	var verr *service.ValidationError
	var perr *service.PermissionError

	switch {
	case errors.As(err, &verr):
		utils.ErrorResponse(c, http.StatusBadRequest, label, verr.Fields)
	case errors.As(err, &perr):
		utils.ErrorResponse(c, http.StatusForbidden, labelPermission, perr.Detail)
	case errors.Is(err, service.ErrDoctorNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, labelDoctorMissing, "No doctor matches the given id")
	case errors.Is(err, service.ErrPatientNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, labelPatientMissing, "No patient matches the given id")
	case errors.Is(err, service.ErrMappingNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, labelMappingMissing, "No active mapping matches the given id")
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("route", c.FullPath()).
			Msg("request failed")
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusInternalServerError, labelInternal, "An unexpected error occurred")
	}
}

// bindJSON decodes the request body into dst and answers 400 itself when it cannot
func bindJSON(c *gin.Context, dst interface{}, label string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, label, bindDetails(err))
		return false
	}
	return true
}

// bindDetails names the offending field when a value has the wrong JSON type
func bindDetails(err error) interface{} {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return labelInvalidBody
	}

	msg := "Incorrect type."
	if typeErr.Type != nil {
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			msg = "A valid integer is required."
		case reflect.String:
			msg = "Not a valid string."
		}
	}
	return map[string][]string{typeErr.Field: {msg}}
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", resource),
			fmt.Sprintf("%s must be a positive integer", param))
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the caller set by the auth middleware
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", "Invalid or expired token")
		return 0, false
	}
	return userID, true
}
