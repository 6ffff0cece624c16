package models

import "time"

// LeadSource is the acquisition channel a lead came from.
type LeadSource string

const (
	Website_LeadSource     LeadSource = "website"
	FacebookAds_LeadSource LeadSource = "facebook_ads"
	GoogleAds_LeadSource   LeadSource = "google_ads"
	Referral_LeadSource    LeadSource = "referral"
	Events_LeadSource      LeadSource = "events"
	Other_LeadSource       LeadSource = "other"
)

// LeadStatus is the position of a lead in the sales funnel.
type LeadStatus string

const (
	New_LeadStatus       LeadStatus = "new"
	Contacted_LeadStatus LeadStatus = "contacted"
	Qualified_LeadStatus LeadStatus = "qualified"
	Lost_LeadStatus      LeadStatus = "lost"
	Won_LeadStatus       LeadStatus = "won"
)

type Lead struct {
	// ? maybe change to uuid.UUID
	ID string `json:"id"`
	// AccountID is the owning account; set at creation, never updated.
	AccountID      string     `json:"account_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Source         LeadSource `json:"source"`
	Status         LeadStatus `json:"status"`
	Score          int        `json:"score"`
	LeadValue      Double     `json:"lead_value"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	IsQualified    bool       `json:"is_qualified"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
