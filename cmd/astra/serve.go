package main

import (
	"fmt"
	"net/http"

	"github.com/solex2006/astra-social-tutor/handlers"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ASTRA HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp()
			if err != nil {
				return err
			}
			defer app.Close()

			router := mux.NewRouter()

			router.Use(corsMiddleware)
			router.Use(jsonMiddleware)

			router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}).Methods("OPTIONS")

			handlers.NewSessionHandler(app.sessions).RegisterRoutes(router)
			handlers.NewTaskHandler(app.tasks).RegisterRoutes(router)
			handlers.NewRecordHandler(app.audit).RegisterRoutes(router)
			handlers.NewExportHandler(app.export).RegisterRoutes(router)

			router.HandleFunc("/health", healthCheckHandler).Methods("GET")

			addr := ":" + app.cfg.Port
			fmt.Printf("Server starting on port %s\n", app.cfg.Port)

			if err := http.ListenAndServe(addr, router); err != nil {
				return fmt.Errorf("server failed to start: %w", err)
			}
			return nil
		},
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
