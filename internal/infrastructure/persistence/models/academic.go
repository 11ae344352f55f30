package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/academia/backend/internal/domain/academic"
)

// CourseModel is the persistence model for the Course domain entity.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShortName   string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	StartDate   *time.Time
	EndDate     *time.Time
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (CourseModel) TableName() string {
	return "courses"
}

// ToDomain converts the persistence model to a domain Course entity.
func (m *CourseModel) ToDomain() *academic.Course {
	return &academic.Course{
		ID:          m.ID,
		ShortName:   m.ShortName,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Price:       m.Price,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Course entity.
func (m *CourseModel) FromDomain(c *academic.Course) {
	m.ID = c.ID
	m.ShortName = c.ShortName
	m.Name = c.Name
	m.Description = c.Description
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.Price = c.Price
	m.IsActive = c.IsActive
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// CourseModelFromDomain creates a new persistence model from a domain Course entity.
func CourseModelFromDomain(c *academic.Course) *CourseModel {
	m := &CourseModel{}
	m.FromDomain(c)
	return m
}

// PersonModel is the persistence model for the Person domain entity.
type PersonModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Country     string    `gorm:"type:varchar(100)"`
	City        string    `gorm:"type:varchar(100)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Institution string    `gorm:"type:varchar(200)"`
	Profession  string    `gorm:"type:varchar(200)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "people"
}

// ToDomain converts the persistence model to a domain Person entity.
func (m *PersonModel) ToDomain() *academic.Person {
	return &academic.Person{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Country:     m.Country,
		City:        m.City,
		Phone:       m.Phone,
		Institution: m.Institution,
		Profession:  m.Profession,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Person entity.
func (m *PersonModel) FromDomain(p *academic.Person) {
	m.ID = p.ID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Email = p.Email
	m.Country = p.Country
	m.City = p.City
	m.Phone = p.Phone
	m.Institution = p.Institution
	m.Profession = p.Profession
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// PersonModelFromDomain creates a new persistence model from a domain Person entity.
func PersonModelFromDomain(p *academic.Person) *PersonModel {
	m := &PersonModel{}
	m.FromDomain(p)
	return m
}

// EnrollmentModel is the persistence model for the Enrollment domain entity.
type EnrollmentModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PersonID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_person_course,priority:1"`
	CourseID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_person_course,priority:2"`
	InvoiceID    *uuid.UUID `gorm:"type:uuid"`
	Matriculated bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// ToDomain converts the persistence model to a domain Enrollment entity.
func (m *EnrollmentModel) ToDomain() *academic.Enrollment {
	return &academic.Enrollment{
		ID:           m.ID,
		PersonID:     m.PersonID,
		CourseID:     m.CourseID,
		InvoiceID:    m.InvoiceID,
		Matriculated: m.Matriculated,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Enrollment entity.
func (m *EnrollmentModel) FromDomain(e *academic.Enrollment) {
	m.ID = e.ID
	m.PersonID = e.PersonID
	m.CourseID = e.CourseID
	m.InvoiceID = e.InvoiceID
	m.Matriculated = e.Matriculated
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// EnrollmentModelFromDomain creates a new persistence model from a domain Enrollment entity.
func EnrollmentModelFromDomain(e *academic.Enrollment) *EnrollmentModel {
	m := &EnrollmentModel{}
	m.FromDomain(e)
	return m
}
