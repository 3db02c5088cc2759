package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "zenith-hr/docs" // Swagger docs
	"zenith-hr/internal/api"
	"zenith-hr/internal/config"
	"zenith-hr/internal/store"
)

// @title ZenithHR API
// @version 1.0
// @description Local-first HR administration API: employees, recruitment pipeline, learning catalog and a streaming AI assistant

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg := config.LoadConfig()

	log.Println("Opening state database:", cfg.DataPath)
	db, err := store.NewDB(cfg.DataPath)
	if err != nil {
		log.Fatal("db open:", err)
	}
	defer db.Close()

	apiSrv, err := api.NewAPI(db, cfg)
	if err != nil {
		log.Fatal("api init:", err)
	}
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // resume uploads
		WriteTimeout: 5 * time.Minute,  // assistant streaming responses
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
