package dto

// MediaResponse wraps image upload/validate/delete outcomes.
type MediaResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Name    string   `json:"name,omitempty"`
	Path    string   `json:"path,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
