package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appacademic "github.com/academia/backend/internal/application/academic"
	appsync "github.com/academia/backend/internal/application/sync"
	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
	"github.com/academia/backend/internal/infrastructure/logger"
	"github.com/academia/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Conflict sends a 409 conflict response
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.Error(c, http.StatusConflict, dto.ErrCodeConflict, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain and synchronization errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := errorCode(err)
	message := err.Error()
	if code == dto.ErrCodeInternal {
		// Never leak internals to clients; the detail goes to the log
		logger.L(c.Request.Context()).Error("unhandled error", zap.Error(err))
		message = "An unexpected error occurred"
	}
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// errorCode classifies an error into a response error code. Synchronization
// errors carry their own kind; everything else is matched against the
// domain sentinels.
func errorCode(err error) string {
	var syncErr *integration.SyncError
	if errors.As(err, &syncErr) {
		switch syncErr.Kind {
		case integration.KindNotFound:
			return dto.ErrCodeNotFound
		case integration.KindConflict:
			return dto.ErrCodeConflict
		case integration.KindExternalService:
			return dto.ErrCodeExternalService
		case integration.KindCompensationFailure:
			return dto.ErrCodeCompensationFailed
		}
	}

	switch {
	case errors.Is(err, academic.ErrCourseNotFound),
		errors.Is(err, academic.ErrPersonNotFound),
		errors.Is(err, academic.ErrEnrollmentNotFound),
		errors.Is(err, integration.ErrCourseLinkNotFound),
		errors.Is(err, integration.ErrEnrollmentLinkNotFound):
		return dto.ErrCodeNotFound

	case errors.Is(err, appacademic.ErrAlreadyEnrolled),
		errors.Is(err, appacademic.ErrEmailTaken):
		return dto.ErrCodeAlreadyExists

	case errors.Is(err, academic.ErrEnrollmentAlreadyMatriculated),
		errors.Is(err, appsync.ErrNotMatriculated):
		return dto.ErrCodeInvalidState

	case errors.Is(err, academic.ErrCourseInvalidShortName),
		errors.Is(err, academic.ErrCourseInvalidName),
		errors.Is(err, academic.ErrCourseInvalidDates),
		errors.Is(err, academic.ErrPersonInvalidEmail),
		errors.Is(err, academic.ErrPersonInvalidName),
		errors.Is(err, integration.ErrLinkInvalidState):
		return dto.ErrCodeValidation
	}

	return dto.ErrCodeInternal
}
