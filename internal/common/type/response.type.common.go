package types

// Response is what services hand back to handlers; the `send` func installed
// by middleware.ResponseInit renders it.
type Response struct {
	Code    int
	Message string
	Data    any
	Errors  []string
	Error   error
	// Raw writes Data as the body without the ResponseAPI envelope.
	Raw bool
}

// ResponseAPI is the JSON envelope for non-raw responses.
type ResponseAPI struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}
