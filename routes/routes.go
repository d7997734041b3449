package routes

import (
	"roamio/experience"
	"roamio/export"
	"roamio/itinerary"
	"roamio/middleware"
	"roamio/notify"
	"roamio/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddItineraryRoutes(router *httprouter.Router) {
	router.POST("/api/itineraries", middleware.Authenticate(itinerary.CreateItinerary))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/:id", middleware.Authenticate(itinerary.GetItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))

	router.POST("/api/itineraries/:id/items", middleware.Authenticate(itinerary.CreateItem))
	router.GET("/api/itineraries/:id/conflicts", middleware.Authenticate(itinerary.GetConflicts))
	router.GET("/api/itineraries/:id/items/:itemId/warning", middleware.Authenticate(itinerary.GetItemWarning))
	router.GET("/api/itineraries/:id/slots", middleware.Authenticate(itinerary.GetAvailableSlots))
	router.PUT("/api/itineraries/:id/schedule", middleware.Authenticate(itinerary.SaveSchedule))

	router.GET("/api/itineraries/:id/qr", middleware.Authenticate(export.ShareQR))
	router.GET("/api/itineraries/:id/pdf", middleware.Authenticate(export.SchedulePDF))
}

func AddExperienceRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/experiences", middleware.Authenticate(experience.CreateExperience))
	router.GET("/api/experiences/:id", rateLimiter.Limit(experience.GetExperience))
	router.GET("/api/experiences/:id/availability", rateLimiter.Limit(experience.GetAvailability))
	router.PUT("/api/experiences/:id/availability", middleware.Authenticate(experience.SetAvailability))
}

func AddNotifyRoutes(router *httprouter.Router) {
	router.GET("/ws/itineraries/:id", notify.HandleWS)
}
