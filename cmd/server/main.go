package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aquawash/api/internal/config"
	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/handler"
	"github.com/aquawash/api/internal/router"
	"github.com/aquawash/api/internal/service"
	"github.com/aquawash/api/internal/ws"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	queries := database.New(pool)

	hub := ws.NewHub()
	go hub.Run()

	orderSvc := service.NewOrderService(pool, queries, func(db database.DBTX) service.OrderStore {
		return database.New(db)
	})

	r := router.New(router.Deps{
		Auth:      handler.NewAuthHandler(queries, cfg.JWTSecret),
		Services:  handler.NewServiceHandler(queries),
		Orders:    handler.NewOrderHandler(orderSvc, queries, hub),
		Hub:       hub,
		JWTSecret: cfg.JWTSecret,
	})

	addr := ":" + cfg.Port
	log.Printf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
