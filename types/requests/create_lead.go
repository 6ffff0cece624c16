package requests

import (
	"time"

	"github.com/2HgO/erino-go/models"
)

type CreateLeadRequest struct {
	FirstName      string            `json:"first_name" validate:"required"`
	LastName       string            `json:"last_name" validate:"required"`
	Email          string            `json:"email" validate:"required,email"`
	Phone          string            `json:"phone"`
	Company        string            `json:"company"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Source         models.LeadSource `json:"source" default:"other" validate:"oneof=website facebook_ads google_ads referral events other"`
	Status         models.LeadStatus `json:"status" default:"new" validate:"oneof=new contacted qualified lost won"`
	Score          int               `json:"score" validate:"gte=0,lte=100"`
	LeadValue      models.Double     `json:"lead_value"`
	LastActivityAt *time.Time        `json:"last_activity_at"`
	IsQualified    bool              `json:"is_qualified"`
}
