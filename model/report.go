// model/report.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is one submitted relief report. Submitter identity is stored
// denormalized so it reflects the account at the time of submission.
type Report struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReportID   string    `gorm:"column:report_id;type:varchar(10);uniqueIndex:idx_reports_report_id;not null" json:"report_id"`
	ReportType string    `gorm:"column:report_type;type:varchar(50);index:idx_reports_report_type;not null" json:"report_type"`
	AllData    string    `gorm:"column:all_data;type:text;not null" json:"all_data"`
	Urgency    string    `gorm:"column:urgency;type:varchar(50)" json:"urgency,omitempty"`
	Location   string    `gorm:"column:location;type:text" json:"location,omitempty"`
	PhotoID    string    `gorm:"column:photo_id;type:varchar(255)" json:"photo_id,omitempty"`
	UserID     *int64    `gorm:"column:user_id;index:idx_reports_user_id" json:"user_id,omitempty"`
	Username   string    `gorm:"column:username;type:varchar(255)" json:"username,omitempty"`
	FirstName  string    `gorm:"column:first_name;type:varchar(255)" json:"first_name,omitempty"`
	LastName   string    `gorm:"column:last_name;type:varchar(255)" json:"last_name,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}

// updated_at is stamped once at insert and never refreshed automatically
// (no trigger exists on the table either).
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now()
	}
	return nil
}

// GenerateReportID returns a short human-shareable identifier: the first
// 8 hex characters of a UUIDv4, upper-cased, e.g. "3FA85F64".
func GenerateReportID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// NormalizeReportID maps caller-supplied identifiers onto the stored form.
func NormalizeReportID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
