package dto

// CreateAnnouncementRequest creates an announcement (admin only).
type CreateAnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsImportant bool   `json:"isImportant"`
	Category    string `json:"category"`
}

// MissingFields returns the names of absent required fields.
func (r *CreateAnnouncementRequest) MissingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	return missing
}

// UpdateAnnouncementRequest is a partial update; nil fields are left
// unchanged.
type UpdateAnnouncementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	IsImportant *bool   `json:"isImportant"`
	Category    *string `json:"category"`
}
