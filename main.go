package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/handlers"
	"github.com/syhrzkwn/boilerplate-project-exercisetracker/initializers"
	"github.com/syhrzkwn/boilerplate-project-exercisetracker/middleware"
	"github.com/syhrzkwn/boilerplate-project-exercisetracker/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Best-effort .env loading for local development.
	_ = godotenv.Load()

	cfg, err := initializers.LoadServerConfig()
	if err != nil {
		log.Fatal("Invalid server config:", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", dbURL)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		log.Printf("DB connection failed: %v, retrying in 2s...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Migration driver error:", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatal("Migration init error:", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("Migration failed:", err)
	}

	usersRepo := repository.NewUsersRepository(db)
	exercisesRepo := repository.NewExercisesRepository(db)

	if os.Getenv("GIN_MODE") == "release" || strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLogger())
	r.Use(gin.Recovery())

	// Trusted proxies for correct client IP handling behind a load balancer.
	if trusted := os.Getenv("TRUSTED_PROXIES"); trusted != "" {
		parts := strings.Split(trusted, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := r.SetTrustedProxies(parts); err != nil {
			log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
		}
	} else {
		_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	}

	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit())

	usersHandler := handlers.NewUsersHandler(usersRepo, exercisesRepo)

	r.GET("/", handlers.Landing)
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/users", usersHandler.CreateUser)
		api.GET("/users", usersHandler.GetUsers)
		api.POST("/users/:id/exercises", usersHandler.CreateExercise)
		api.GET("/users/:id/logs", usersHandler.GetLogs)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Your app is listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", cfg.Port, err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
