package handlers

type Response struct {
	Error string `json:"error"`
}

type ValidationResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

var (
	// Predefined errors
	BadJSONResponse      = Response{"invalid JSON body"}
	AccessDeniedResponse = Response{"access denied"}
)
