package model

type WikiPage struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Space   string `json:"space,omitempty"`
	Version int    `json:"version,omitempty"`
	URL     string `json:"url,omitempty"`
	Body    string `json:"body,omitempty"`
}
