package responses

type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}
