package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"JejuTrip-App/internal/handler"
	"JejuTrip-App/internal/infrastructure/database"
	"JejuTrip-App/internal/infrastructure/firestore"
	"JejuTrip-App/internal/infrastructure/scheduler"
	"JejuTrip-App/internal/repository"
	"JejuTrip-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")
	schedulerAPIURL := os.Getenv("SCHEDULER_API_URL")
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")

	if supabaseURL == "" || supabaseAnonKey == "" || schedulerAPIURL == "" || projectID == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY, SCHEDULER_API_URL, GOOGLE_CLOUD_PROJECT_ID")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	ctx := context.Background()
	firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	// リポジトリとユースケースの組み立て
	placesRepo := repository.NewSupabasePlacesRepository(supabaseClient)
	itineraryRepo := repository.NewFirestoreItineraryRepository(firestoreClient.GetClient())
	scheduleRepo := scheduler.NewScheduleServiceProvider(schedulerAPIURL)

	itineraryUseCase := usecase.NewItineraryUseCase(placesRepo, itineraryRepo, scheduleRepo)
	itineraryHandler := handler.NewItineraryHandler(itineraryUseCase)
	placesHandler := handler.NewPlacesHandler(placesRepo)

	// ルーティング設定
	router := gin.Default()
	router.GET("/api/health", healthHandler)
	router.GET("/places", placesHandler.GetPlaces)
	router.GET("/places/:id", placesHandler.GetPlace)
	router.POST("/itinerary/generate", itineraryHandler.PostGenerateItinerary)
	router.GET("/itinerary/:id", itineraryHandler.GetItinerary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("JejuTrip-App server starting on :%s...\n", port)
	log.Fatal(router.Run(":" + port))
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "JejuTrip-App"})
}
