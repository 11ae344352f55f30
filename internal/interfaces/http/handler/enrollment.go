package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appacademic "github.com/academia/backend/internal/application/academic"
	"github.com/academia/backend/internal/domain/integration"
	"github.com/academia/backend/internal/interfaces/http/middleware"
)

// EnrollmentHandler handles enrollment-related API endpoints
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService *appacademic.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentService *appacademic.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// CreateEnrollmentRequest represents a request to enroll a person in a course
type CreateEnrollmentRequest struct {
	PersonID uuid.UUID `json:"person_id" binding:"required"`
	CourseID uuid.UUID `json:"course_id" binding:"required"`
}

// ChangeSyncStateRequest represents a request to change the administrative
// state of a synchronized enrollment
type ChangeSyncStateRequest struct {
	State string `json:"state" binding:"required,oneof=MATRICULADO SUSPENDIDO COMPLETADO DESMATRICULADO"`
	Notes string `json:"notes" binding:"max=1000"`
}

// Create handles POST /academic/enrollments
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req.PersonID, req.CourseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, EnrollmentResponseFromDomain(enrollment))
}

// GetByID handles GET /academic/enrollments/:id
func (h *EnrollmentHandler) GetByID(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.enrollmentService.Get(c.Request.Context(), enrollmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, EnrollmentResponseFromDomain(enrollment))
}

// Matriculate handles POST /academic/enrollments/:id/matriculate. The
// matriculation flag is committed locally and then the remote learning
// platform is synchronized; on a remote failure the flag is reverted.
func (h *EnrollmentHandler) Matriculate(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.enrollmentService.Matriculate(c.Request.Context(), enrollmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, EnrollmentResponseFromDomain(enrollment))
}

// ChangeSyncState handles PUT /academic/enrollments/:id/sync-state
func (h *EnrollmentHandler) ChangeSyncState(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	var req ChangeSyncStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	link, err := h.enrollmentService.ChangeSyncState(
		c.Request.Context(),
		enrollmentID,
		integration.EnrollmentState(req.State),
		req.Notes,
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, EnrollmentLinkResponseFromDomain(link))
}

// Delete handles DELETE /academic/enrollments/:id
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), enrollmentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers the enrollment routes
func (h *EnrollmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	enrollments := rg.Group("/academic/enrollments")
	{
		enrollments.POST("", h.Create)
		enrollments.GET("/:id", h.GetByID)
		enrollments.DELETE("/:id", h.Delete)
		enrollments.POST("/:id/matriculate", h.Matriculate)
		enrollments.PUT("/:id/sync-state", h.ChangeSyncState)
	}
}
