package internal

// Error is the JSON error envelope returned by non-page endpoints.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
