package seerr

// MediaRequest is the payload for creating a request. Optional fields are
// omitted from the JSON when unset, matching what the API expects.
type MediaRequest struct {
	MediaType  string `json:"mediaType"` // "movie" or "tv"
	MediaID    int    `json:"mediaId"`   // TMDB ID
	Is4K       bool   `json:"is4k"`
	Seasons    []int  `json:"seasons,omitempty"`
	ServerID   int    `json:"serverId,omitempty"`
	ProfileID  int    `json:"profileId,omitempty"`
	RootFolder string `json:"rootFolder,omitempty"`
}

// RequestUpdate is the payload for updating an existing request.
type RequestUpdate struct {
	MediaType  string `json:"mediaType"`
	Seasons    []int  `json:"seasons,omitempty"`
	ServerID   int    `json:"serverId,omitempty"`
	ProfileID  int    `json:"profileId,omitempty"`
	RootFolder string `json:"rootFolder,omitempty"`
}

// RequestFilter selects and pages the request listing.
type RequestFilter struct {
	Take   int    // default 20
	Skip   int    // default 0
	Filter string // all, approved, available, pending, processing, unavailable, failed
	Sort   string // added, modified
}
