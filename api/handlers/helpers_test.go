package handlers_test

import "go.mongodb.org/mongo-driver/mongo"

func mongoNoDocuments() error {
	return mongo.ErrNoDocuments
}
