package api

import (
	"database/sql"
	"net/http"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/store"
)

// LocationsHandler handles location CRUD endpoints.
type LocationsHandler struct {
	DB *sql.DB
}

type createLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// List handles GET /api/locations.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := store.ListLocations(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list locations")
		return
	}
	if locations == nil {
		locations = []model.Location{}
	}
	jsonResponse(w, http.StatusOK, locations)
}

// Create handles POST /api/locations.
func (h *LocationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loc, err := store.CreateLocation(r.Context(), h.DB, req.Name, req.Address, req.Type)
	if err != nil {
		storeError(w, err, "failed to create location")
		return
	}

	jsonResponse(w, http.StatusCreated, loc)
}

// Get handles GET /api/locations/{id}.
func (h *LocationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc, err := store.GetLocation(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get location")
		return
	}
	jsonResponse(w, http.StatusOK, loc)
}

// Delete handles DELETE /api/locations/{id}. Deletion is refused while any
// item still references the location.
func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteLocation(r.Context(), h.DB, r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete location")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "location deleted"})
}
