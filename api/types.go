package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	catalogHandler catalogHandler
	contactHandler contactHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error  string   `json:"error" example:"validation failed"`
	Status string   `json:"status" example:"error"`
	Fields []string `json:"fields,omitempty" example:"name,email"`
}
