package packets

type DocumentStatusResponse struct {
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

type ArtworkResponse struct {
	URL string `json:"url"`
}

type ThemeListResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}
