package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"GoBuddy-App/internal/database"
	"GoBuddy-App/internal/domain/service"
	"GoBuddy-App/internal/handler"
	infraDatabase "GoBuddy-App/internal/infrastructure/database"
	infraFirestore "GoBuddy-App/internal/infrastructure/firestore"
	"GoBuddy-App/internal/infrastructure/maps"
	"GoBuddy-App/internal/repository"
	"GoBuddy-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" || supabaseAnonKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY, SUPABASE_DB_PASSWORD, FIRESTORE_PROJECT_ID")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

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

	fmt.Println("Initializing PostgreSQL client...")
	dbClient, err := infraDatabase.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer dbClient.Close()

	if err := dbClient.InitializeSchema(ctx); err != nil {
		log.Fatalf("スキーマ初期化失敗: %v", err)
	}
	fmt.Println("✅ PostgreSQL connection successful!")

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID環境変数が設定されていません")
	}
	firestoreClient, err := infraFirestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	// 外部サービスプロバイダ
	nominatimProvider := maps.NewNominatimProvider()
	overpassProvider := maps.NewOverpassProvider()

	// リポジトリ
	cacheRepo := repository.NewPostgresCacheRepository(dbClient)
	playersRepo := repository.NewPostgresPlayersRepository(dbClient)
	coursesRepo := repository.NewPostgresCoursesRepository(dbClient)
	coursesReadRepo := repository.NewSupabaseCoursesRepository(supabaseClient)
	recommendRepo := repository.NewFirestoreRecommendationRepository(firestoreClient.GetClient())

	// ドメインサービス
	geocodingService := service.NewGeocodingService(cacheRepo, nominatimProvider)
	cityResolveService := service.NewCityResolveService(cacheRepo, overpassProvider, nominatimProvider)
	discoveryService := service.NewCourseDiscoveryService(cacheRepo, cacheRepo, coursesRepo, overpassProvider, cityResolveService)
	rankingService := service.NewRankingService()
	playersService := service.NewPlayersService(playersRepo, geocodingService)

	// ユースケースとハンドラー
	recommendUseCase := usecase.NewRecommendationUseCase(playersService, discoveryService, rankingService, recommendRepo)
	recommendationHandler := handler.NewRecommendationHandler(recommendUseCase)
	playersHandler := handler.NewPlayersHandler(playersService)
	coursesHandler := handler.NewCoursesHandler(coursesReadRepo)

	// HTTPルーティングの設定
	router := gin.Default()
	router.GET("/api/health", healthHandler)
	router.GET("/players", playersHandler.GetPlayers)
	router.GET("/courses", coursesHandler.GetCourses)
	router.POST("/recommendations", recommendationHandler.PostRecommendation)
	router.GET("/recommendations/:id", recommendationHandler.GetRecommendation)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("GoBuddy-App server starting on :%s...\n", port)
	log.Fatal(router.Run(":" + port))
}

func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "GoBuddy-App"})
}
