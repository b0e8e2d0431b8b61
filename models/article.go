package models

// Article is a Labor Code article as returned by the backend. Its fields are
// passed through unchanged.
type Article struct {
	Number  string `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LegalResponse is the backend's reply payload for one query
type LegalResponse struct {
	Answer   string    `json:"answer"`
	Articles []Article `json:"articles"`
}

// QueryRequest is the request body sent to POST /api/query
type QueryRequest struct {
	Query string `json:"query"`
}

// Normalize ensures Articles encodes as an empty JSON array instead of null
func (r LegalResponse) Normalize() LegalResponse {
	if r.Articles == nil {
		r.Articles = []Article{}
	}
	return r
}
