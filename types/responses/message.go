package responses

type MessageResponse struct {
	Message string `json:"message"`
}
