package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"go.uber.org/zap"

	"github.com/jredd/mouse-tracks-backend/internal/auth"
	"github.com/jredd/mouse-tracks-backend/internal/config"
	"github.com/jredd/mouse-tracks-backend/internal/handler"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
	"github.com/jredd/mouse-tracks-backend/internal/service"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("не удалось загрузить конфигурацию", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("не удалось подключиться к базе данных", zap.Error(err))
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			if _, err := db.Exec("BEGIN"); err != nil {
				log.Warn("ошибка при инициации транзакции миграции", zap.Error(err))
				continue
			}
			err := func() error {
				content, readErr := os.ReadFile(file)
				if readErr != nil {
					return readErr
				}
				if _, execErr := db.Exec(string(content)); execErr != nil {
					return execErr
				}
				return nil
			}()
			if err != nil {
				log.Warn("миграция завершилась ошибкой", zap.String("file", file), zap.Error(err))
				db.Exec("ROLLBACK")
			} else {
				db.Exec("COMMIT")
				log.Info("миграция применена", zap.String("file", file))
			}
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	tripRepo := repository.NewTripRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	// Инициализируем сервисы
	registry := service.NewActivityRegistry(catalogRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	tripService := service.NewTripService(tripRepo, catalogRepo)
	itineraryService := service.NewItineraryService(db, registry, tripRepo, itineraryRepo, catalogRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(catalogService, tripService, itineraryService, log)
	router := gin.Default()
	api := router.Group("/api")
	api.Use(auth.Middleware(cfg.JWTSecret, userRepo))
	h.RegisterRoutes(api)

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	log.Info("запуск сервера", zap.String("port", cfg.APIPort))
	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatal("ошибка запуска сервера", zap.Error(err))
	}
}
