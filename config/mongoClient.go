package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	directoryDB *mongo.Database
	mongoClient *mongo.Client
	mongoOnce   sync.Once
)

// ConnectDirectory initializes the connection to the organizational
// directory store (services, departments, employees). The directory is
// read-only from this service's perspective.
func ConnectDirectory() *mongo.Database {
	mongoOnce.Do(func() {
		mongoURI := os.Getenv("MONGODB_URI")
		if mongoURI == "" {
			log.Fatal("Please define the MONGODB_URI environment variable")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}

		log.Println("Connected to directory store!")

		mongoClient = c
		directoryDB = mongoClient.Database("directory")
	})

	return directoryDB
}

// GetDirectoryCollection returns a directory collection by name.
func GetDirectoryCollection(name string) *mongo.Collection {
	return ConnectDirectory().Collection(name)
}
