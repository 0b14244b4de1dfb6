package main

import (
	"log"
	"net/http"
	"os"

	"cityfix-be/config"
	"cityfix-be/controllers"
	"cityfix-be/repository"
	"cityfix-be/routes"
	"cityfix-be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to PostgreSQL")
	}
	config.SeedCategories(db)
	log.Println("PostgreSQL connection established successfully!")

	directory := config.ConnectDirectory()
	config.ConnectRedis()
	storageClient := config.ConnectStorage()

	issueRepo := repository.NewIssueRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	solutionRepo := repository.NewSolutionRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	moderationRepo := repository.NewModerationRepo(db)
	directoryRepo := repository.NewDirectoryRepo(directory)

	storage := services.NewMinioStorage(storageClient, os.Getenv("MINIO_BUCKET"), os.Getenv("MINIO_PUBLIC_URL"))
	notifier := services.NewRedisNotifier(config.RedisClient)

	issueService := services.NewIssueService(issueRepo, likeRepo, categoryRepo, moderationRepo, storage, notifier)
	reservationService := services.NewReservationService(issueRepo, reservationRepo, directoryRepo, notifier)
	solutionService := services.NewSolutionService(issueRepo, reservationRepo, solutionRepo, storage, notifier)
	categoryService := services.NewCategoryService(categoryRepo)
	analyticsService := services.NewAnalyticsService(issueRepo, likeRepo, solutionRepo)

	issueController := controllers.NewIssueController(issueService)
	reservationController := controllers.NewReservationController(reservationService, directoryRepo)
	solutionController := controllers.NewSolutionController(solutionService, directoryRepo)
	categoryController := controllers.NewCategoryController(categoryService)
	adminController := controllers.NewAdminIssueController(issueService, analyticsService)

	r := gin.Default()
	r.Use(cors.Default())

	routes.IssueRoutes(r, issueController, reservationController, solutionController)
	routes.ReservationRoutes(r, reservationController)
	routes.SolutionRoutes(r, solutionController)
	routes.CategoryRoutes(r, categoryController)
	routes.AdminIssueRoutes(r, adminController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
