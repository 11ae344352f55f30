package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appacademic "github.com/academia/backend/internal/application/academic"
	"github.com/academia/backend/internal/interfaces/http/middleware"
)

// PersonHandler handles person-related API endpoints
type PersonHandler struct {
	BaseHandler
	personService *appacademic.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService *appacademic.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// CreatePersonRequest represents a request to register a new person
type CreatePersonRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Country     string `json:"country" binding:"max=100"`
	City        string `json:"city" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Institution string `json:"institution" binding:"max=255"`
	Profession  string `json:"profession" binding:"max=255"`
}

// Create handles POST /academic/people
func (h *PersonHandler) Create(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	person, err := h.personService.Create(c.Request.Context(), appacademic.CreatePersonInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Country:     req.Country,
		City:        req.City,
		Phone:       req.Phone,
		Institution: req.Institution,
		Profession:  req.Profession,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, PersonResponseFromDomain(person))
}

// GetByID handles GET /academic/people/:id
func (h *PersonHandler) GetByID(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid person ID format")
		return
	}

	person, err := h.personService.Get(c.Request.Context(), personID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PersonResponseFromDomain(person))
}

// RegisterRoutes registers the person routes
func (h *PersonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	people := rg.Group("/academic/people")
	{
		people.POST("", h.Create)
		people.GET("/:id", h.GetByID)
	}
}
