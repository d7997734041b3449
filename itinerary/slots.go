package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/rdx"
	"roamio/schedule"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const availabilityCacheTTL = 5 * time.Minute

// GET /api/itineraries/:id/slots?day=N&experience=E[&exclude=itemId]
// Resolves which of an experience's declared slots are open on one
// itinerary day. Pass exclude when rescheduling an existing item so it
// does not block itself. An experience with no declared availability for
// that weekday yields offered=false, which is not the same as fully
// booked.
func GetAvailableSlots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	day, err := strconv.Atoi(query.Get("day"))
	if err != nil || day < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "day must be a positive integer")
		return
	}
	experienceID := query.Get("experience")
	if experienceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "experience is required")
		return
	}
	excludeItemID := query.Get("exclude")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itin, err := fetchItinerary(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if day > tripDays(itin) {
		utils.RespondWithError(w, http.StatusBadRequest, "day is outside the trip")
		return
	}

	weekday, err := schedule.DayOfWeek(itin, day)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Itinerary has an invalid start date")
		return
	}

	declared, err := fetchWeekdaySlots(ctx, experienceID, weekday)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching availability")
		return
	}
	if len(declared) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"offered":     false,
			"day_of_week": weekday,
			"slots":       []schedule.AvailableTimeSlot{},
		})
		return
	}

	items, err := fetchItems(ctx, itin.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching items")
		return
	}
	var dayItems []models.ScheduledItem
	for _, it := range items {
		if it.DayNumber == day {
			dayItems = append(dayItems, it)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"offered":     true,
		"day_of_week": weekday,
		"slots":       schedule.ResolveSlots(declared, dayItems, excludeItemID),
	})
}

// fetchWeekdaySlots reads an experience's declared slots for one weekday,
// with a short Redis cache in front since availability changes rarely and
// the slot picker is hit on every reschedule.
func fetchWeekdaySlots(ctx context.Context, experienceID, weekday string) ([]models.TimeSlot, error) {
	cacheKey := "avail:" + experienceID + ":" + weekday
	if cached, ok := rdx.CacheGet(ctx, cacheKey); ok {
		var slots []models.TimeSlot
		if err := json.Unmarshal([]byte(cached), &slots); err == nil {
			return slots, nil
		}
	}

	var avail models.WeeklyAvailability
	filter := bson.M{"experienceid": experienceID, "day_of_week": weekday}
	err := db.AvailabilityCollection.FindOne(ctx, filter).Decode(&avail)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(avail.Slots); err == nil {
		rdx.CacheSet(ctx, cacheKey, string(data), availabilityCacheTTL)
	}
	return avail.Slots, nil
}
