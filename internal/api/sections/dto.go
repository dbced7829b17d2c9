package sections

import "time"

// Section is one content section of the public site.
type Section struct {
	Slug        string `json:"slug"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// FanColumn is the fan-view (list) shape: truncated body, image count, no
// paragraph splitting.
type FanColumn struct {
	ID         string    `json:"id"`
	Titulo     string    `json:"titulo"`
	Excerpt    string    `json:"excerpt"`
	ImageCount int       `json:"imageCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ColumnDetail is the expanded single-item shape: full body split into
// paragraphs plus every image URL.
type ColumnDetail struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Parrafos  []string  `json:"parrafos"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

type FanArtist struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Ubicacion string    `json:"ubicacion"`
	Excerpt   string    `json:"excerpt"`
	Imagen    string    `json:"imagen"`
	CreatedAt time.Time `json:"createdAt"`
}

type ArtistDetail struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Ubicacion string    `json:"ubicacion"`
	Parrafos  []string  `json:"parrafos"`
	Imagen    string    `json:"imagen"`
	CreatedAt time.Time `json:"createdAt"`
}
