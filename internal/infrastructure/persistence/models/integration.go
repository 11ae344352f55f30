package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/academia/backend/internal/domain/integration"
)

// CourseLinkModel is the persistence model for the CourseLink domain entity.
type CourseLinkModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RemoteCourseID  int64     `gorm:"not null"`
	RemoteShortName string    `gorm:"type:varchar(100);not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (CourseLinkModel) TableName() string {
	return "course_links"
}

// ToDomain converts the persistence model to a domain CourseLink entity.
func (m *CourseLinkModel) ToDomain() *integration.CourseLink {
	return &integration.CourseLink{
		ID:              m.ID,
		CourseID:        m.CourseID,
		RemoteCourseID:  m.RemoteCourseID,
		RemoteShortName: m.RemoteShortName,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain CourseLink entity.
func (m *CourseLinkModel) FromDomain(l *integration.CourseLink) {
	m.ID = l.ID
	m.CourseID = l.CourseID
	m.RemoteCourseID = l.RemoteCourseID
	m.RemoteShortName = l.RemoteShortName
	m.IsActive = l.IsActive
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// CourseLinkModelFromDomain creates a new persistence model from a domain CourseLink entity.
func CourseLinkModelFromDomain(l *integration.CourseLink) *CourseLinkModel {
	m := &CourseLinkModel{}
	m.FromDomain(l)
	return m
}

// EnrollmentLinkModel is the persistence model for the EnrollmentLink domain entity.
type EnrollmentLinkModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	EnrollmentID   uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	RemoteUserID   int64                       `gorm:"not null"`
	RemoteUsername string                      `gorm:"type:varchar(200);not null"`
	State          integration.EnrollmentState `gorm:"type:varchar(20);not null;default:'MATRICULADO'"`
	Notes          string                      `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (EnrollmentLinkModel) TableName() string {
	return "enrollment_links"
}

// ToDomain converts the persistence model to a domain EnrollmentLink entity.
func (m *EnrollmentLinkModel) ToDomain() *integration.EnrollmentLink {
	return &integration.EnrollmentLink{
		ID:             m.ID,
		EnrollmentID:   m.EnrollmentID,
		RemoteUserID:   m.RemoteUserID,
		RemoteUsername: m.RemoteUsername,
		State:          m.State,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain EnrollmentLink entity.
func (m *EnrollmentLinkModel) FromDomain(l *integration.EnrollmentLink) {
	m.ID = l.ID
	m.EnrollmentID = l.EnrollmentID
	m.RemoteUserID = l.RemoteUserID
	m.RemoteUsername = l.RemoteUsername
	m.State = l.State
	m.Notes = l.Notes
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// EnrollmentLinkModelFromDomain creates a new persistence model from a domain EnrollmentLink entity.
func EnrollmentLinkModelFromDomain(l *integration.EnrollmentLink) *EnrollmentLinkModel {
	m := &EnrollmentLinkModel{}
	m.FromDomain(l)
	return m
}

// MessagingGroupModel is the persistence model for the MessagingGroup domain entity.
type MessagingGroupModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	GroupID    string    `gorm:"type:varchar(100);not null"`
	GroupTitle string    `gorm:"type:varchar(200)"`
	InviteLink string    `gorm:"type:varchar(500)"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (MessagingGroupModel) TableName() string {
	return "messaging_groups"
}

// ToDomain converts the persistence model to a domain MessagingGroup entity.
func (m *MessagingGroupModel) ToDomain() *integration.MessagingGroup {
	return &integration.MessagingGroup{
		ID:         m.ID,
		CourseID:   m.CourseID,
		GroupID:    m.GroupID,
		GroupTitle: m.GroupTitle,
		InviteLink: m.InviteLink,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain MessagingGroup entity.
func (m *MessagingGroupModel) FromDomain(g *integration.MessagingGroup) {
	m.ID = g.ID
	m.CourseID = g.CourseID
	m.GroupID = g.GroupID
	m.GroupTitle = g.GroupTitle
	m.InviteLink = g.InviteLink
	m.IsActive = g.IsActive
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}

// MessagingGroupModelFromDomain creates a new persistence model from a domain MessagingGroup entity.
func MessagingGroupModelFromDomain(g *integration.MessagingGroup) *MessagingGroupModel {
	m := &MessagingGroupModel{}
	m.FromDomain(g)
	return m
}
