package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/auth"
	"stayhub/internal/modules/blocks"
	"stayhub/internal/modules/catalog"
	"stayhub/internal/modules/rates"
	"stayhub/internal/modules/search"
	jwtsvc "stayhub/internal/pkg/jwt"
	"stayhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	cityRepo := repository.NewCityRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	unavailabilityRepo := repository.NewUnavailabilityRepository(db)
	peakRateRepo := repository.NewPeakRateRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	searchHandler := search.NewHandler(search.NewService(propertyRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(propertyRepo, roomRepo, categoryRepo, cityRepo))
	blocksHandler := blocks.NewHandler(blocks.NewService(unavailabilityRepo, roomRepo))
	ratesHandler := rates.NewHandler(rates.NewService(peakRateRepo, roomRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/me", middleware.JWTAuth(j), authHandler.Me)

		v1.GET("/cities", catalogHandler.ListCities)
		v1.GET("/categories", catalogHandler.ListPublicCategories)

		v1.GET("/properties/search", searchHandler.Search)
		v1.GET("/properties/detail", searchHandler.Detail)
		v1.GET("/properties/:id/calendar", searchHandler.Calendar)

		tenant := v1.Group("/tenant")
		tenant.Use(middleware.JWTAuth(j), middleware.TenantOnly())
		{
			tenant.GET("/categories", catalogHandler.ListCategories)
			tenant.POST("/categories", catalogHandler.CreateCategory)
			tenant.PUT("/categories/:id", catalogHandler.UpdateCategory)
			tenant.DELETE("/categories/:id", catalogHandler.DeleteCategory)

			tenant.GET("/properties", catalogHandler.ListProperties)
			tenant.POST("/properties", catalogHandler.CreateProperty)
			tenant.GET("/properties/:id", catalogHandler.GetProperty)
			tenant.PUT("/properties/:id", catalogHandler.UpdateProperty)
			tenant.DELETE("/properties/:id", catalogHandler.DeleteProperty)

			tenant.GET("/rooms", catalogHandler.ListRooms)
			tenant.POST("/rooms", catalogHandler.CreateRoom)
			tenant.PUT("/rooms/:id", catalogHandler.UpdateRoom)
			tenant.DELETE("/rooms/:id", catalogHandler.DeleteRoom)

			tenant.GET("/properties/:id/unavailabilities", blocksHandler.List)
			tenant.GET("/rooms/:id/unavailabilities", blocksHandler.ListForRoom)
			tenant.POST("/unavailabilities", blocksHandler.Create)
			tenant.PUT("/unavailabilities/:id", blocksHandler.Update)
			tenant.DELETE("/unavailabilities/:id", blocksHandler.Delete)

			tenant.GET("/properties/:id/peak-seasons", ratesHandler.List)
			tenant.GET("/rooms/:id/peak-seasons", ratesHandler.ListForRoom)
			tenant.POST("/peak-seasons", ratesHandler.Create)
			tenant.PUT("/peak-seasons/:id", ratesHandler.Update)
			tenant.DELETE("/peak-seasons/:id", ratesHandler.Delete)
		}
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
