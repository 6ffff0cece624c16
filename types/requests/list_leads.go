package requests

// ListLeadsRequest is the closed table of recognized lead filters: one field
// per (field, operator) pair the listing endpoint understands. Keys outside
// this table are dropped by the query decoder, never rejected.
type ListLeadsRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`

	EmailEquals     string `query:"email_equals"`
	EmailContains   string `query:"email_contains"`
	CompanyEquals   string `query:"company_equals"`
	CompanyContains string `query:"company_contains"`
	CityEquals      string `query:"city_equals"`
	CityContains    string `query:"city_contains"`

	StatusEquals string `query:"status_equals"`
	StatusIn     string `query:"status_in"`
	SourceEquals string `query:"source_equals"`
	SourceIn     string `query:"source_in"`

	ScoreEquals      string `query:"score_equals"`
	ScoreGt          string `query:"score_gt"`
	ScoreLt          string `query:"score_lt"`
	ScoreBetween     string `query:"score_between"`
	LeadValueEquals  string `query:"lead_value_equals"`
	LeadValueGt      string `query:"lead_value_gt"`
	LeadValueLt      string `query:"lead_value_lt"`
	LeadValueBetween string `query:"lead_value_between"`

	CreatedAtOn           string `query:"created_at_on"`
	CreatedAtAfter        string `query:"created_at_after"`
	CreatedAtBefore       string `query:"created_at_before"`
	CreatedAtBetween      string `query:"created_at_between"`
	LastActivityAtOn      string `query:"last_activity_at_on"`
	LastActivityAtAfter   string `query:"last_activity_at_after"`
	LastActivityAtBefore  string `query:"last_activity_at_before"`
	LastActivityAtBetween string `query:"last_activity_at_between"`

	IsQualifiedEquals string `query:"is_qualified_equals"`
}
