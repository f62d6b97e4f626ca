package main

import (
	"log"
	"net/http"
	"os"

	"github.com/godswillumukoro/say-yes/routes"
	"github.com/godswillumukoro/say-yes/services"
	"github.com/godswillumukoro/say-yes/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	store := &services.DynamoStore{Dynamo: dynamoService}
	log.Println("DynamoDB client initialized.")

	// Initialize S3-backed media storage
	s3Service, err := services.NewS3Service(os.Getenv("S3_BUCKET_NAME"), os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize Services
	registry := services.NewRegistry()
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	likeService := &services.LikeService{Store: store}
	chatService := &services.ChatService{Store: store, Registry: registry}
	speechService := services.NewSpeechService(os.Getenv("DEEPGRAM_API_KEY"))
	imageService := services.NewImageService(os.Getenv("GOOGLE_API_KEY"), os.Getenv("GOOGLE_IMAGE_MODEL"), s3Service)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Mount the realtime chat transport
	socketServer := socket.NewSocketServer(chatService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterLikeRoutes(r, likeService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterSpeechRoutes(r, speechService)
	routes.RegisterImageRoutes(r, imageService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
