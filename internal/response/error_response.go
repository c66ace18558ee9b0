package response

// ErrorBody is the JSON error shape every endpoint returns. Clients read
// Detail; DevMessage is only filled outside production.
type ErrorBody struct {
	Detail     string `json:"detail"`
	DevMessage string `json:"dev_message,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
