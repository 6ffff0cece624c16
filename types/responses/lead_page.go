package responses

import "github.com/2HgO/erino-go/models"

// LeadPageResponse is the listing envelope: one page of leads plus the
// pagination totals computed over the full filtered set.
type LeadPageResponse struct {
	Data       []*models.Lead `json:"data"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}
