package photos

import (
	"math"

	"github.com/ariel-ams/photos-api-back/models"
)

// PerPage is the fixed page size of the photos endpoint.
const PerPage = 10

// Page windows photos into 1-based page number page, preserving input
// order. Pages past the end yield an empty list rather than an error.
func Page(photos []models.Photo, page int) models.PhotoPage {
	if page <= 0 {
		page = 1
	}

	total := len(photos)
	totalPages := int(math.Ceil(float64(total) / float64(PerPage)))

	// Compare against totalPages before computing the offset; multiplying
	// an arbitrary page number by PerPage can overflow into a negative
	// slice index.
	start := total
	if page <= totalPages {
		start = (page - 1) * PerPage
	}
	end := start + PerPage
	if end > total {
		end = total
	}

	data := photos[start:end]
	if data == nil {
		data = []models.Photo{}
	}

	return models.PhotoPage{
		CurrentPage: page,
		PerPage:     PerPage,
		Total:       total,
		TotalPages:  totalPages,
		Data:        data,
	}
}
