package models

// Photo mirrors one item of the upstream photos feed.
type Photo struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// PhotoPage is one page of the photos feed.
type PhotoPage struct {
	CurrentPage int     `json:"currentPage"`
	PerPage     int     `json:"perPage"`
	Total       int     `json:"total"`
	TotalPages  int     `json:"totalPages"`
	Data        []Photo `json:"data"`
}
