// Package main rental platform API.
//
// @title           Peer-to-Peer Rental API
// @version         1.0
// @description     Rental marketplace (items, search, rentals).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer"
	itemctrl "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer/controller/item"
	rentalctrl "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer/controller/rental"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer/validation"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/cache"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/config"
	itemrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/item"
	rentalrepo "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/repository/rental"
	itemsvc "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/service/item"
	rentalsvc "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/service/rental"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/database"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/util/metrics"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// stores: Postgres when DATABASE_URL is set, volatile memory otherwise
	var (
		ir itemrepo.Repo
		rr rentalrepo.Repo
	)
	if cfg.DatabaseURL != "" {
		pool, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		ir = itemrepo.NewPostgres(pool)
		rr = rentalrepo.NewPostgres(pool)
	} else {
		ir = itemrepo.NewMemory()
		rr = rentalrepo.NewMemory()
	}

	// search cache: Redis when configured, in-process otherwise
	var searchCache cache.Cache
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("redis connect failed", "err", err)
			os.Exit(1)
		}
		searchCache = cache.NewRedis(client)
	} else {
		searchCache = cache.NewMemory()
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// services
	is := itemsvc.New(ir, searchCache, m)
	rs := rentalsvc.New(ir, rr, m)

	// controllers
	v := validator.New()
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status": "ok",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Item:   itemC,
		Rental: rentalC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env, "postgres", cfg.DatabaseURL != "", "redis", cfg.RedisAddr != "")

	e.Logger.Fatal(e.Start(":" + port))
}
