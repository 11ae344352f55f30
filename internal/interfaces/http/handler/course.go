package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appacademic "github.com/academia/backend/internal/application/academic"
	"github.com/academia/backend/internal/interfaces/http/middleware"
)

// CourseHandler handles course-related API endpoints
type CourseHandler struct {
	BaseHandler
	courseService *appacademic.CourseService
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService *appacademic.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CreateCourseRequest represents a request to create a new course
type CreateCourseRequest struct {
	ShortName   string     `json:"short_name" binding:"required,min=1,max=100"`
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
}

// UpdateCourseRequest represents a request to update a course.
// Omitted fields are left unchanged.
type UpdateCourseRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
}

// Create handles POST /academic/courses. The course is persisted locally
// and then synchronized to the remote platforms; if synchronization fails
// the local record is rolled back and the error is returned.
func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	input := appacademic.CreateCourseInput{
		ShortName:   req.ShortName,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Price != nil {
		input.Price = toDecimal(*req.Price)
	}

	course, err := h.courseService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CourseResponseFromDomain(course))
}

// Update handles PUT /academic/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid course ID format")
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	input := appacademic.UpdateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Price != nil {
		input.Price = toDecimalPtr(*req.Price)
	}

	course, err := h.courseService.Update(c.Request.Context(), courseID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CourseResponseFromDomain(course))
}

// GetByID handles GET /academic/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid course ID format")
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), courseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CourseResponseFromDomain(course))
}

// List handles GET /academic/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, CourseResponseFromDomain(&courses[i]))
	}

	h.Success(c, responses)
}

// Delete handles DELETE /academic/courses/:id. Remote resources are
// cleaned up on a best-effort basis before the local row is removed.
func (h *CourseHandler) Delete(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid course ID format")
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), courseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// VerifySync handles GET /academic/courses/:id/sync and reports whether
// the course exists on the remote learning platform
func (h *CourseHandler) VerifySync(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid course ID format")
		return
	}

	synced, err := h.courseService.VerifySync(c.Request.Context(), courseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SyncStatusResponse{CourseID: courseID, Synced: synced})
}

// RegisterRoutes registers the course routes
func (h *CourseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	courses := rg.Group("/academic/courses")
	{
		courses.POST("", h.Create)
		courses.GET("", h.List)
		courses.GET("/:id", h.GetByID)
		courses.PUT("/:id", h.Update)
		courses.DELETE("/:id", h.Delete)
		courses.GET("/:id/sync", h.VerifySync)
	}
}
