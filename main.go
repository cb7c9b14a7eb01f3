package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/auth"
	deflection "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/calc/deflection"
	report "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/calc/report"
	compare "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/compare"
	export "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/export"
	material "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	repo "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/repo"
	units "github.com/thibaultthi/Mechanical-Engineer-Helper/internal/units"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, materials material.Repository, users repo.UserRepository) {
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}
	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: users}

	materialH := &material.Handler{Repo: materials}
	unitsH := &units.Handler{}
	deflectionH := &deflection.Handler{}
	compareH := &compare.Handler{Repo: materials}
	exportH := &export.Handler{Repo: materials}
	reportH := &report.Handler{Repo: materials}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	api.HandleFunc("/materials/export", exportH.Materials).Methods("GET")
	api.HandleFunc("/materials", materialH.List).Methods("GET")
	api.HandleFunc("/materials/{name}", materialH.Get).Methods("GET")
	api.HandleFunc("/categories", materialH.Categories).Methods("GET")

	api.HandleFunc("/units", unitsH.List).Methods("GET")
	api.HandleFunc("/units/convert", unitsH.Convert).Methods("POST")

	api.HandleFunc("/tools/deflection/calc", deflectionH.Calc).Methods("POST")
	api.HandleFunc("/tools/deflection/batch", deflectionH.Batch).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/compare", compareH.Compare).Methods("POST")

	adminApi := api.PathPrefix("/admin").Subrouter()
	adminApi.Use(authEnv.AuthMiddleware)
	adminApi.HandleFunc("/materials", materialH.Create).Methods("POST")
	adminApi.HandleFunc("/materials/{name}", materialH.Update).Methods("PUT")
	adminApi.HandleFunc("/materials/import", materialH.Import).Methods("POST")

	mux.PathPrefix("/").
		Handler(http.FileServer(http.Dir("./static")))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on the environment")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	var materials material.Repository
	var users repo.UserRepository
	if os.Getenv("DATABASE_URL") != "" {
		db := auth.InitDB()
		defer db.Close()
		materials = repo.NewPostgresMaterialDB(db)
		users = repo.NewPostgresUserDB(db)
	} else {
		log.Println("DATABASE_URL not set, serving the built-in seed set from memory")
		materials = repo.NewMemoryMaterialDB(material.Seed)
		users = repo.NewMemoryUserDB()
	}

	mux := mux.NewRouter()
	HandleList(mux, materials, users)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
