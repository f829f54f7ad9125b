package main

import (
	"database/sql"
	"fmt"
	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/journalrepo"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"
	"log/slog"
	"net/http"
	"os"

	_ "fulfillment/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	if err := gormDB.AutoMigrate(&journalrepo.EntryDTO{}); err != nil {
		log.Fatalf("Failed to migrate shipment journal schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager(jobs.Schedules{
		TrackingRefresh: configs.TrackingRefreshSchedule,
		ServiceStatus:   configs.ServiceStatusSchedule,
	}, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		OrderServiceBaseURL: goDotEnvVariable("ORDER_SERVICE_BASE_URL"),
		OrderServiceAPIKey:  goDotEnvVariable("ORDER_SERVICE_API_KEY"),

		PostexBaseURL:           goDotEnvVariable("POSTEX_BASE_URL"),
		PostexAPIToken:          goDotEnvVariable("POSTEX_API_TOKEN"),
		PostexPickupAddressCode: goDotEnvVariable("POSTEX_PICKUP_ADDRESS_CODE"),

		LCSBaseURL:      goDotEnvVariable("LCS_BASE_URL"),
		LCSAPIKey:       goDotEnvVariable("LCS_API_KEY"),
		LCSAPIPassword:  goDotEnvVariable("LCS_API_PASSWORD"),
		LCSPickupCityID: goDotEnvVariable("LCS_PICKUP_CITY_ID"),

		TrackingRefreshSchedule: goDotEnvVariable("TRACKING_REFRESH_SCHEDULE"),
		ServiceStatusSchedule:   goDotEnvVariable("SERVICE_STATUS_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize ORM: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreatePushOrderCommandHandler(),
		app.CreateResolveCityCommandHandler(),
		app.CreateRefreshTrackingCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateSearchCitiesQueryHandler(),
		app.CreateGetServiceStatusQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetShipmentJournalQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
