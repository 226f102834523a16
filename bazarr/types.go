package bazarr

// DownloadEpisodeSubtitle is the payload for downloading an episode subtitle.
type DownloadEpisodeSubtitle struct {
	EpisodeID int    `json:"episodeId"`
	Language  string `json:"language"`
	Forced    bool   `json:"forced"`
	HI        bool   `json:"hi"`
}

// DownloadMovieSubtitle is the payload for downloading a movie subtitle.
type DownloadMovieSubtitle struct {
	MovieID  int    `json:"movieId"`
	Language string `json:"language"`
	Forced   bool   `json:"forced"`
	HI       bool   `json:"hi"`
}
