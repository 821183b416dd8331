package api

import (
	"database/sql"
	"net/http"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/stock"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// itemWithStatus decorates an item with its derived stock status.
type itemWithStatus struct {
	model.Item
	Status stock.Status `json:"status"`
}

func withStatus(items []model.Item) []itemWithStatus {
	out := make([]itemWithStatus, len(items))
	for i, item := range items {
		out[i] = itemWithStatus{
			Item:   item,
			Status: stock.Classify(item.Quantity, item.TargetQuantity),
		}
	}
	return out
}

// filterParams reads the shared location/category/search selectors.
// Missing parameters mean "no filtering".
func filterParams(r *http.Request) (locationID, category, search string) {
	q := r.URL.Query()
	locationID = q.Get("location")
	if locationID == "" {
		locationID = model.LocationAll
	}
	category = q.Get("category")
	if category == "" {
		category = model.CategoryAll
	}
	return locationID, category, q.Get("q")
}

// List handles GET /api/items. Supports location, category, and q query
// parameters; the result preserves store order (newest first) and carries
// each item's stock status.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}

	locationID, category, search := filterParams(r)
	jsonResponse(w, http.StatusOK, withStatus(stock.Filter(items, locationID, category, search)))
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields model.ItemFields
	if err := decodeJSON(r, &fields); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, fields)
	if err != nil {
		storeError(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, itemWithStatus{
		Item:   *item,
		Status: stock.Classify(item.Quantity, item.TargetQuantity),
	})
}

// Update handles PUT /api/items/{id}. All mutable fields are replaced; id
// and added date are untouched.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields model.ItemFields
	if err := decodeJSON(r, &fields); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, r.PathValue("id"), fields)
	if err != nil {
		storeError(w, err, "failed to update item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteItem(r.Context(), h.DB, r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
