package domain

// RepoStats is the read-only repository metadata shown as UI decoration.
type RepoStats struct {
	Repo    string `json:"repo"`
	Stars   int    `json:"stars"`
	Forks   int    `json:"forks"`
	HTMLURL string `json:"html_url"`
}
