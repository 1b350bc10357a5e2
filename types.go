package surrealhttp

// Response is a single response envelope returned by the SurrealDB REST
// endpoints. Most endpoints return an ordered list of these, one per
// statement executed.
type Response struct {
	Time   string `json:"time"`
	Status string `json:"status"`
	Result any    `json:"result"`
}

// PatchData represents a single JSON Patch operation for Patch
type PatchData struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Auth holds signin/signup variables.
type Auth struct {
	Namespace string `json:"NS,omitempty"`
	Database  string `json:"DB,omitempty"`
	Scope     string `json:"SC,omitempty"`
	Username  string `json:"user,omitempty"`
	Password  string `json:"pass,omitempty"`
}
