package models

import "time"

// Known complaint statuses. The column itself is free text and any value
// may replace any other.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusResolved   = "Resolved"

	// StatusFilterAll disables the status filter on complaint listings.
	StatusFilterAll = "total"
)

type Complaint struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Category         string    `gorm:"size:100;not null;index" json:"category"`
	Type             string    `gorm:"size:100" json:"type"`
	Classroom        string    `gorm:"size:100" json:"classroom"`
	Status           string    `gorm:"size:50;not null;index" json:"status"`
	Description      string    `gorm:"type:text" json:"description"`
	FacultyID        string    `gorm:"column:faculty_id;index" json:"faculty_id"`
	AssignedIncharge string    `gorm:"column:assigned_incharge;index" json:"assigned_incharge"`
	Worker           *string   `gorm:"column:worker;index" json:"worker"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

func (Complaint) TableName() string { return "complaints" }
