package itinerary

import (
	"context"

	"roamio/db"
	"roamio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoStore is the persistence boundary an editing session flushes to.
type mongoStore struct{}

func (mongoStore) BulkUpdate(ctx context.Context, itineraryID string, updates []models.ScheduleUpdate) error {
	writes := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"itemid": u.ItemID, "itineraryid": itineraryID}).
			SetUpdate(bson.M{"$set": bson.M{
				"start_time":  u.StartTime,
				"end_time":    u.EndTime,
				"custom_note": u.CustomNote,
			}}))
	}
	_, err := db.ItemsCollection.BulkWrite(ctx, writes)
	return err
}

func (mongoStore) BulkDelete(ctx context.Context, itineraryID string, itemIDs []string) error {
	filter := bson.M{"itineraryid": itineraryID, "itemid": bson.M{"$in": itemIDs}}
	_, err := db.ItemsCollection.DeleteMany(ctx, filter)
	return err
}
