package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"github.com/redis/go-redis/v9"

	"github.com/pesafrisma19/wargakemang/internals/configs"
	database "github.com/pesafrisma19/wargakemang/internals/databases"
	"github.com/pesafrisma19/wargakemang/internals/helpers/storage"
	middlewares "github.com/pesafrisma19/wargakemang/internals/middlewares"
	authMiddleware "github.com/pesafrisma19/wargakemang/internals/middlewares/auth"
	routes "github.com/pesafrisma19/wargakemang/internals/route"
	"github.com/pesafrisma19/wargakemang/internals/seeds"
)

// newBlacklist: Redis kalau REDIS_ADDR diset, selain itu noop
func newBlacklist() (authMiddleware.TokenBlacklist, func()) {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, logout tidak mem-blacklist token")
		return authMiddleware.NoopBlacklist{}, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa di-ping (%v), blacklist tetap dicoba per request", err)
	} else {
		log.Println("✅ Redis connected.")
	}
	return authMiddleware.NewRedisBlacklist(client), func() { _ = client.Close() }
}

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             12 * 1024 * 1024, // foto KTP/KK + file import
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (import batch butuh lebih lama dari query biasa)
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrate + warm-up
	database.ConnectDB()
	database.TunePool()
	database.AutoMigrate()
	database.WarmUpQueries()

	seeds.RunAllSeeds(database.DB)

	blacklist, closeRedis := newBlacklist()
	defer closeRedis()

	st := storage.NewSupabaseStorageFromEnv()
	if !st.Configured() {
		log.Println("⚠️ Supabase Storage belum dikonfigurasi, upload foto akan gagal")
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, routes.Deps{
		JWTSecret: configs.JWTSecret,
		Blacklist: blacklist,
		Storage:   st,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
