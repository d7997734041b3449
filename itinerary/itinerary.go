// itinerary.go
package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/schedule"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var itin models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&itin); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	start := utils.ParseDate(itin.StartDate)
	end := utils.ParseDate(itin.EndDate)
	if itin.Name == "" || start == nil || end == nil || end.Before(*start) {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and a valid date range are required")
		return
	}

	itin.ItineraryID = utils.GenerateRandomString(13)
	itin.UserID = userID
	if itin.Status == "" {
		itin.Status = "upcoming"
	}
	itin.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, itin); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, itin)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}
	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:id
// Returns the itinerary with its full item collection, the shape an
// editing session seeds from.
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	items, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"itinerary": itin,
		"items":     items,
	})
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if itin.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": itin.ItineraryID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted successfully"})
}

// POST /api/itineraries/:id/items
// Adds an activity to a day. Soft conflicts are returned alongside the
// created item so the client can surface them; only malformed input is
// rejected here.
func CreateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if itin.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var it models.ScheduledItem
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if it.ExperienceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "experience_id is required")
		return
	}
	if !schedule.ValidTimeRange(it.StartTime, it.EndTime) {
		utils.RespondWithError(w, http.StatusBadRequest, "start_time and end_time must be HH:mm with start before end")
		return
	}
	if it.DayNumber < 1 || it.DayNumber > tripDays(itin) {
		utils.RespondWithError(w, http.StatusBadRequest, "day_number is outside the trip")
		return
	}

	it.ItemID = utils.GetUUID()
	it.ItineraryID = itin.ItineraryID

	if _, err := db.ItemsCollection.InsertOne(ctx, it); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting item")
		return
	}

	items, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"item":    it,
		"warning": schedule.WarningFor(it, items),
	})
}

// GET /api/itineraries/:id/conflicts
func GetConflicts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	items, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	conflicts := schedule.DetectConflicts(items)
	if conflicts == nil {
		conflicts = []schedule.Conflict{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"conflicts": conflicts})
}

// GET /api/itineraries/:id/items/:itemId/warning
func GetItemWarning(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	items, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	itemID := ps.ByName("itemId")
	for _, it := range items {
		if it.ItemID == itemID {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"warning": schedule.WarningFor(it, items)})
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound, "Item not found")
}

// ---------- shared lookups ----------

func fetchItinerary(ctx context.Context, id string) (models.Itinerary, error) {
	var itin models.Itinerary
	filter := bson.M{"itineraryid": id, "deleted": bson.M{"$ne": true}}
	err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&itin)
	return itin, err
}

func fetchItems(ctx context.Context, itineraryID string) ([]models.ScheduledItem, error) {
	items, err := utils.FindAndDecode[models.ScheduledItem](ctx, db.ItemsCollection, bson.M{"itineraryid": itineraryID})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ScheduledItem{}
	}
	return items, nil
}

func tripDays(itin models.Itinerary) int {
	start := utils.ParseDate(itin.StartDate)
	end := utils.ParseDate(itin.EndDate)
	if start == nil || end == nil {
		return 0
	}
	return int(end.Sub(*start).Hours()/24) + 1
}
