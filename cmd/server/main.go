package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"hallmate/internal/api"
	"hallmate/internal/auth"
	"hallmate/internal/db"
	"hallmate/internal/repository"
	"hallmate/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	mailer := service.NewSendGridMailer(
		os.Getenv("SENDGRID_API_KEY"),
		os.Getenv("SENDGRID_FROM_EMAIL"),
		os.Getenv("SENDGRID_FROM_NAME"),
	)
	sms := service.NewTwilioSMSSender(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_FROM_NUMBER"),
	)
	sender := service.NewSenderService(mailer, sms)

	bookingRepo := repository.NewBookingRepository(conn)
	hallRepo := repository.NewHallRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	tokenRepo := repository.NewTokenRepository(conn)

	bookingSvc := service.NewBookingService(bookingRepo, sender)
	hallSvc := service.NewHallService(hallRepo)
	authSvc := service.NewAuthService(userRepo, tokenRepo, sender, []byte(jwtSecret), os.Getenv("ALLOWED_EMAIL_DOMAIN"))
	jobSvc := service.NewJobService(tokenRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	hallHandler := api.NewHallHandler(hallSvc)
	authHandler := api.NewAuthHandler(authSvc)
	userHandler := api.NewUserHandler(authSvc)

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.PurgeExpiredResetTokens(); err != nil {
			log.Printf("Error in reset token purge job: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reset token purge job: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", api.Health).Methods("GET")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	r.HandleFunc("/api/auth/verify-reset-token", authHandler.VerifyResetToken).Methods("POST")
	r.HandleFunc("/api/auth/reset-password", authHandler.ResetPassword).Methods("POST")
	r.HandleFunc("/api/halls", hallHandler.ListHalls).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(auth.AdminAuthMiddleware([]byte(jwtSecret)))
	admin.HandleFunc("/bookings", bookingHandler.UpdateBookingStatus).Methods("PATCH")
	admin.HandleFunc("/halls", hallHandler.CreateHall).Methods("POST")
	admin.HandleFunc("/halls", hallHandler.UpdateHall).Methods("PUT")
	admin.HandleFunc("/halls", hallHandler.DeleteHall).Methods("DELETE")
	admin.HandleFunc("/users", userHandler.ListUsers).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
