package experience

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/rdx"
	"roamio/schedule"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// GET /api/experiences/:id/availability[?day_of_week=Monday]
// Returns the experience's declared weekly slots, optionally filtered to
// one weekday. A weekday with no document simply does not appear.
func GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	experienceID := ps.ByName("id")

	filter := bson.M{"experienceid": experienceID}
	if dow := r.URL.Query().Get("day_of_week"); dow != "" {
		if !weekdays[dow] {
			utils.RespondWithError(w, http.StatusBadRequest, "day_of_week must be a weekday name")
			return
		}
		filter["day_of_week"] = dow
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	availability, err := utils.FindAndDecode[models.WeeklyAvailability](ctx, db.AvailabilityCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching availability")
		return
	}
	if availability == nil {
		availability = []models.WeeklyAvailability{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"availability": availability})
}

// PUT /api/experiences/:id/availability
// Partner/guide declares the weekly slots for one weekday, replacing any
// previous declaration for that day. Slot times are validated here so
// the scheduling core downstream never sees malformed ones.
func SetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	experienceID := ps.ByName("id")

	var avail models.WeeklyAvailability
	if err := json.NewDecoder(r.Body).Decode(&avail); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if !weekdays[avail.DayOfWeek] {
		utils.RespondWithError(w, http.StatusBadRequest, "day_of_week must be a weekday name")
		return
	}
	for i := range avail.Slots {
		if !schedule.ValidTimeRange(avail.Slots[i].StartTime, avail.Slots[i].EndTime) {
			utils.RespondWithError(w, http.StatusBadRequest, "slot times must be HH:mm with start before end")
			return
		}
		if avail.Slots[i].SlotID == "" {
			avail.Slots[i].SlotID = utils.GetUUID()
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var exp models.Experience
	if err := db.ExperiencesCollection.FindOne(ctx, bson.M{"experienceid": experienceID}).Decode(&exp); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Experience not found")
		return
	}
	if exp.PartnerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	avail.ExperienceID = experienceID
	avail.UpdatedAt = time.Now().Unix()

	filter := bson.M{"experienceid": experienceID, "day_of_week": avail.DayOfWeek}
	opts := options.Replace().SetUpsert(true)
	if _, err := db.AvailabilityCollection.ReplaceOne(ctx, filter, avail, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving availability")
		return
	}

	// The slot picker caches per (experience, weekday); drop the stale entry.
	rdx.CacheDel(ctx, "avail:"+experienceID+":"+avail.DayOfWeek)

	utils.RespondWithJSON(w, http.StatusOK, avail)
}
