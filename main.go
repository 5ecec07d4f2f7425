package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"

    "github.com/lillybelle855/clg-predicter/config"
    "github.com/lillybelle855/clg-predicter/handlers"
    "github.com/lillybelle855/clg-predicter/middleware"
)

type HealthResponse struct {
    Status  string `json:"status"`
    Dataset struct {
        Source     string `json:"source"`
        Records    int    `json:"records"`
        Columns    int    `json:"columns"`
        Categories int    `json:"categories"`
    } `json:"dataset"`
    DBStatus string `json:"db_status,omitempty"`
    Error    string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status: "ok",
    }

    response.Dataset.Source = config.DatasetSource()
    if ds := config.GetDataset(); ds != nil {
        response.Dataset.Records = len(ds.Records)
        response.Dataset.Columns = len(ds.Columns)
        response.Dataset.Categories = len(ds.Categories)
    } else {
        response.Status = "error"
        response.Error = "Dataset not loaded"
    }

    if config.DatasetSource() == "postgres" {
        if err := config.CheckPostgresHealth(); err != nil {
            response.Status = "error"
            response.DBStatus = "connection_error"
            response.Error = err.Error()
        } else {
            response.DBStatus = "ok"
        }
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    startTime := time.Now()
    log.Printf("Starting predictor service at %s", startTime.Format(time.RFC3339))

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    port := config.ServerPort()

    log.Printf("Loading cutoff dataset from %s source...", config.DatasetSource())
    if err := config.LoadDatasetWithRetry(5); err != nil {
        log.Fatalf("Failed to load cutoff dataset: %v", err)
    }
    defer config.CloseDB()

    config.InitCache()

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: config.AllowedOrigins(),
        AllowedMethods: []string{
            "GET", "POST", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "Origin",
            "X-Requested-With",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
            "Content-Disposition",
        },
        MaxAge: 86400,
    })

    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)

    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    // Prediction routes
    api.HandleFunc("/predict", handlers.PredictColleges).Methods("POST", "OPTIONS")
    api.HandleFunc("/predict/pdf", handlers.DownloadPredictionPDF).Methods("POST", "OPTIONS")

    // Selection form option lists
    api.HandleFunc("/options/categories", handlers.GetCategoryOptions).Methods("GET")
    api.HandleFunc("/options/branches", handlers.GetBranchOptions).Methods("GET")
    api.HandleFunc("/options/districts", handlers.GetDistrictOptions).Methods("GET")
    api.HandleFunc("/options/regions", handlers.GetRegionOptions).Methods("GET")

    // Health check
    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")
}
