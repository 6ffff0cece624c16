package requests

import (
	"time"

	"github.com/2HgO/erino-go/models"
)

// UpdateLeadRequest carries a partial lead payload; nil fields are left
// untouched. There is deliberately no owner field to strip.
type UpdateLeadRequest struct {
	LeadID string `uri:"id" json:"-"`

	FirstName      *string            `json:"first_name" validate:"omitempty,min=1"`
	LastName       *string            `json:"last_name" validate:"omitempty,min=1"`
	Email          *string            `json:"email" validate:"omitempty,email"`
	Phone          *string            `json:"phone"`
	Company        *string            `json:"company"`
	City           *string            `json:"city"`
	State          *string            `json:"state"`
	Source         *models.LeadSource `json:"source" validate:"omitempty,oneof=website facebook_ads google_ads referral events other"`
	Status         *models.LeadStatus `json:"status" validate:"omitempty,oneof=new contacted qualified lost won"`
	Score          *int               `json:"score" validate:"omitempty,gte=0,lte=100"`
	LeadValue      *models.Double     `json:"lead_value"`
	LastActivityAt *time.Time         `json:"last_activity_at"`
	IsQualified    *bool              `json:"is_qualified"`
}
