package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sahiti3636/finwise-ai/models"
)

func CreateMessage(ctx context.Context, message *models.ChatMessage) error {
	collection := MongoClient.Database(MongoDatabase).Collection(MessageCollection)
	_, err := collection.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("error creating chat message: %v", err)
	}
	return nil
}

// GetMessagesByUserID returns a user's full transcript, oldest first.
func GetMessagesByUserID(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	collection := MongoClient.Database(MongoDatabase).Collection(MessageCollection)
	filter := bson.M{
		"user_id": userID,
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching messages: %v", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	for cursor.Next(ctx) {
		var message models.ChatMessage
		if err := cursor.Decode(&message); err != nil {
			return nil, fmt.Errorf("error decoding message: %v", err)
		}
		messages = append(messages, message)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return messages, nil
}

func DeleteMessagesByUserID(ctx context.Context, userID string) error {
	collection := MongoClient.Database(MongoDatabase).Collection(MessageCollection)
	_, err := collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting messages: %v", err)
	}
	return nil
}
