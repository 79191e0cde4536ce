package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/db"
	api "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/handlers"
	rl "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/rate_limiter"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/kvstore"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/repo"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/uploads"
)

// @title Storefront Product API
// @version 1.0
// @description REST API for the storefront product catalog: CRUD, image uploads, rule-based recommendations, and client UI state sync.
// @BasePath /
func main() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORE_DRIVER", "postgres")
	viper.SetDefault("MONGO_DB", "storefront")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.AutomaticEnv()

	productRepo, cleanup, err := buildProductRepo()
	if err != nil {
		log.Fatalf("❌ Could not set up product store: %v", err)
	}
	defer cleanup()
	handlers.SetProductRepo(productRepo)

	uploadStore, err := uploads.NewStore(viper.GetString("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("❌ Could not set up uploads: %v", err)
	}
	handlers.SetUploadStore(uploadStore)

	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetClientStateStore(kvstore.New(rdb))
	} else {
		log.Println("REDIS_ADDR not set; client state sync disabled")
	}

	rl.Configure(viper.GetFloat64("RATE_LIMIT_RPS"), viper.GetInt("RATE_LIMIT_BURST"))
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	port := viper.GetString("APP_PORT")
	log.Printf("✅ Server running on %s (store: %s)", port, viper.GetString("STORE_DRIVER"))
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

// buildProductRepo wires the configured store driver. The returned
// cleanup closes whatever connection the driver opened.
func buildProductRepo() (repo.ProductRepository, func(), error) {
	switch driver := viper.GetString("STORE_DRIVER"); driver {
	case "memory":
		return repo.NewInMemoryProductRepository(), func() {}, nil

	case "mongo":
		client, err := db.ConnectMongo(viper.GetString("MONGO_URI"))
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(viper.GetString("MONGO_DB")).Collection("products")
		cleanup := func() { client.Disconnect(context.Background()) }
		return repo.NewMongoProductRepository(coll), cleanup, nil

	default: // postgres
		database, err := db.Connect(viper.GetString("DATABASE_URL"))
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		cleanup := func() { database.Close() }
		return repo.NewPostgresProductRepository(database), cleanup, nil
	}
}
