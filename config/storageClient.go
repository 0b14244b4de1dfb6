package config

import (
	"log"
	"os"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	storageClient *minio.Client
	storageOnce   sync.Once
)

// ConnectStorage initializes the object storage client used for issue and
// solution photos.
func ConnectStorage() *minio.Client {
	storageOnce.Do(func() {
		endpoint := os.Getenv("MINIO_ENDPOINT")
		accessKey := os.Getenv("MINIO_ACCESS_KEY")
		secretKey := os.Getenv("MINIO_SECRET_KEY")
		if endpoint == "" || accessKey == "" || secretKey == "" {
			log.Fatal("Please define the MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY environment variables")
		}

		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: os.Getenv("MINIO_USE_SSL") == "true",
		})
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}

		log.Println("Connected to object storage")
		storageClient = client
	})

	return storageClient
}
