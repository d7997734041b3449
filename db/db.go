package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ItineraryCollection    *mongo.Collection
	ItemsCollection        *mongo.Collection
	ExperiencesCollection  *mongo.Collection
	AvailabilityCollection *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("tripdb")
	ItineraryCollection = database.Collection("itineraries")
	ItemsCollection = database.Collection("itinerary_items")
	ExperiencesCollection = database.Collection("experiences")
	AvailabilityCollection = database.Collection("availability")
}
