package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/mq"
	"roamio/schedule"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// SaveRequest carries one editing session's worth of changes: the
// surviving items the user touched, plus explicit deletions.
type SaveRequest struct {
	Updates   []models.ScheduleUpdate `json:"updates"`
	Deletions []string                `json:"deletions"`
}

// PUT /api/itineraries/:id/schedule
// Replays the client's edits against a fresh baseline, enforces the
// past-item lockout and the hard-conflict gate, then issues the update
// and delete writes. All refusals happen before anything is written.
func SaveSchedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for _, u := range req.Updates {
		if !schedule.ValidTimeRange(u.StartTime, u.EndTime) {
			utils.RespondWithError(w, http.StatusBadRequest, "start_time and end_time must be HH:mm with start before end")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
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

	baseline, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}

	session := schedule.NewSession(itin, baseline, time.Now)
	now := time.Now()

	for _, u := range req.Updates {
		target, ok := findItem(baseline, u.ItemID)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "Item "+u.ItemID+" not found")
			return
		}
		// Started activities cannot be rescheduled; note edits ride the
		// same update record, so they are locked out with it.
		if schedule.IsItemPast(itin, target, now) {
			utils.RespondWithError(w, http.StatusConflict, "This activity has already started and can no longer be changed")
			return
		}
		edit := schedule.ItemEdit{StartTime: &u.StartTime, EndTime: &u.EndTime, CustomNote: &u.CustomNote}
		if err := session.UpdateItem(u.ItemID, edit); err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "Item "+u.ItemID+" not found")
			return
		}
	}

	for _, id := range req.Deletions {
		switch err := session.RemoveItem(id); {
		case errors.Is(err, schedule.ErrItemPast):
			utils.RespondWithError(w, http.StatusConflict, "This activity has already started and can no longer be removed")
			return
		case errors.Is(err, schedule.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Item "+id+" not found")
			return
		}
	}

	result, err := session.Save(ctx, mongoStore{})
	switch {
	case errors.Is(err, schedule.ErrNothingToSave):
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to save")
		return
	case errors.Is(err, schedule.ErrHardConflict):
		utils.RespondWithError(w, http.StatusConflict, "Schedule has overlapping activities; resolve them before saving")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving schedule")
		return
	}

	touchItinerary(ctx, itin.ItineraryID)

	mq.EmitScheduleChanged(ctx, mq.ScheduleEvent{
		ItineraryID: itin.ItineraryID,
		UserID:      userID,
		Updated:     result.Updated,
		Deleted:     result.Deleted,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Schedule saved",
		"updated": result.Updated,
		"deleted": result.Deleted,
	})
}

func findItem(items []models.ScheduledItem, id string) (models.ScheduledItem, bool) {
	for _, it := range items {
		if it.ItemID == id {
			return it, true
		}
	}
	return models.ScheduledItem{}, false
}

func touchItinerary(ctx context.Context, itineraryID string) {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now().Unix()}}
	db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": itineraryID}, update)
}
