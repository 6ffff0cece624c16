package requests

type FetchLeadRequest struct {
	LeadID string `uri:"id"`
}

type DeleteLeadRequest struct {
	LeadID string `uri:"id"`
}
