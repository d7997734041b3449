package models

// Itinerary represents one planned trip. Day numbers on its items are
// 1-based offsets from StartDate (day 1 = the start date itself).
type Itinerary struct {
	ItineraryID string `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID      string `json:"user_id" bson:"user_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	StartDate   string `json:"start_date" bson:"start_date"` // "2006-01-02"
	EndDate     string `json:"end_date" bson:"end_date"`
	// Status is a coarse lifecycle tag (upcoming/ongoing/completed) kept for
	// display. Per-item past/ongoing checks are always recomputed from the
	// clock, never read from here.
	Status    string `json:"status" bson:"status"`
	Deleted   bool   `json:"-" bson:"deleted,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ScheduledItem is one activity placed on a specific day of a trip.
// Times are zero-padded 24-hour "HH:mm" strings with StartTime < EndTime.
type ScheduledItem struct {
	ItemID       string `json:"itemid" bson:"itemid,omitempty"`
	ItineraryID  string `json:"itineraryid" bson:"itineraryid"`
	ExperienceID string `json:"experience_id" bson:"experience_id"`
	DayNumber    int    `json:"day_number" bson:"day_number"`
	StartTime    string `json:"start_time" bson:"start_time"`
	EndTime      string `json:"end_time" bson:"end_time"`
	CustomNote   string `json:"custom_note,omitempty" bson:"custom_note,omitempty"`

	// Denormalized for display; never consulted by conflict logic.
	ExperienceName  string  `json:"experience_name,omitempty" bson:"experience_name,omitempty"`
	DestinationName string  `json:"destination_name,omitempty" bson:"destination_name,omitempty"`
	ImageURL        string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Price           float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// ScheduleUpdate is one record of the bulk-update write issued on save.
type ScheduleUpdate struct {
	ItemID     string `json:"item_id" bson:"item_id"`
	StartTime  string `json:"start_time" bson:"start_time"`
	EndTime    string `json:"end_time" bson:"end_time"`
	CustomNote string `json:"custom_note" bson:"custom_note"`
}
