package academic

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCourseInput carries the fields for a new course
type CreateCourseInput struct {
	ShortName   string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       decimal.Decimal
}

// UpdateCourseInput carries the updatable fields of a course. Nil
// pointers mean "leave unchanged".
type UpdateCourseInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       *decimal.Decimal
}

// CreatePersonInput carries the fields for a new person
type CreatePersonInput struct {
	FirstName   string
	LastName    string
	Email       string
	Country     string
	City        string
	Phone       string
	Institution string
	Profession  string
}
