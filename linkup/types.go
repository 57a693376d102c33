package linkup

// Search depths supported by the Linkup API.
const (
	DepthStandard = "standard"
	DepthDeep     = "deep"
)

// Output types supported by the Linkup API.
const (
	OutputTypeSearchResults = "searchResults"
	OutputTypeSourcedAnswer = "sourcedAnswer"
	OutputTypeStructured    = "structured"
)

type SearchRequest struct {
	Query string `json:"q"`
	// Depth and OutputType are forwarded as-is. The API rejects values it
	// does not know; no local validation happens here.
	Depth      string `json:"depth"`
	OutputType string `json:"outputType"`
}

type SearchResult struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"`
}

type Source struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
