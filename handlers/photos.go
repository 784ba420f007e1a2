package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ariel-ams/photos-api-back/models"
	"github.com/ariel-ams/photos-api-back/photos"
)

type PhotosHandler struct {
	client *photos.Client
}

func NewPhotosHandler(c *photos.Client) *PhotosHandler {
	return &PhotosHandler{client: c}
}

type photosResponse struct {
	Object string           `json:"object"`
	Data   models.PhotoPage `json:"data"`
}

// List serves one page of the proxied photos feed. The page query
// parameter is 1-based; garbage or missing values fall back to page 1.
func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	all, err := h.client.Fetch(r.Context())
	if err != nil {
		log.Println("error fetching photos: ", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: "unable to fetch photos"})
		return
	}

	writeJSON(w, http.StatusOK, photosResponse{
		Object: "list",
		Data:   photos.Page(all, page),
	})
}
