package models

// Experience is a bookable activity offered by a guide or partner. The
// scheduling core treats it as opaque; only its weekly availability matters.
type Experience struct {
	ExperienceID    string   `json:"experienceid" bson:"experienceid,omitempty"`
	PartnerID       string   `json:"partner_id" bson:"partner_id"`
	Name            string   `json:"name" bson:"name"`
	DestinationName string   `json:"destination_name,omitempty" bson:"destination_name,omitempty"`
	Description     string   `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64  `json:"price,omitempty" bson:"price,omitempty"`
	Images          []string `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt       int64    `json:"createdAt" bson:"createdAt"`
}

// TimeSlot is one declared bookable window of an experience on a weekday.
type TimeSlot struct {
	SlotID    string `json:"slotid" bson:"slotid"`
	StartTime string `json:"start_time" bson:"start_time"`
	EndTime   string `json:"end_time" bson:"end_time"`
}

// WeeklyAvailability maps one weekday of one experience to its declared
// slots. One document per (experience, weekday) pair.
type WeeklyAvailability struct {
	ExperienceID string     `json:"experienceid" bson:"experienceid"`
	DayOfWeek    string     `json:"day_of_week" bson:"day_of_week"` // "Monday".."Sunday"
	Slots        []TimeSlot `json:"slots" bson:"slots"`
	UpdatedAt    int64      `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
