package main

import (
	"fmt"
	"log/slog"
	"os"

	"smartlogi/cmd"
	httpadapter "smartlogi/internal/adapters/in/http"
	"smartlogi/internal/adapters/out/postgres/clientrepo"
	"smartlogi/internal/adapters/out/postgres/courierrepo"
	"smartlogi/internal/adapters/out/postgres/parcelrepo"
	"smartlogi/internal/adapters/out/postgres/zonerepo"
	"smartlogi/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.OverdueReportEnabled != "false" {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager := jobs.NewJobManager(app.CreateOverdueParcelsQueryHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
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

		OverdueReportEnabled: goDotEnvVariable("OVERDUE_REPORT_ENABLED"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ProductLineDTO{},
		&parcelrepo.HistoryEntryDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
		&clientrepo.SenderDTO{},
		&clientrepo.RecipientDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateChangeStatusCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateSearchParcelsQueryHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateListHistoryQueryHandler(),
		app.CreateOverdueParcelsQueryHandler(),
		app.CreateUnassignedPriorityQueryHandler(),
		app.CreateCourierStatsQueryHandler(),
		app.CreateZoneStatsQueryHandler(),
		app.CreateGroupCountsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
