package dto

type CreateReportRequest struct {
	ReportID   string `json:"report_id"`
	ReportType string `json:"report_type" binding:"required"`
	AllData    string `json:"all_data" binding:"required"`
	Urgency    string `json:"urgency"`
	Location   string `json:"location"`
	PhotoID    string `json:"photo_id"`
	UserID     *int64 `json:"user_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}
