package models

// Photo represents a single photo in the gallery
type Photo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Filename     string `json:"filename"`
	DisplayOrder int    `json:"displayOrder"`
	URL          string `json:"url,omitempty"`
}

// PhotoPatch describes the mutable fields for a photo. A nil field leaves
// the corresponding attribute unchanged.
type PhotoPatch struct {
	Title        *string
	Description  *string
	Filename     *string
	DisplayOrder *int
}
