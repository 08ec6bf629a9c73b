package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fleet/cmd"
	fleet_http "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres/catalogrepo"
	"fleet/internal/adapters/out/postgres/historyrepo"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbConnectAttempts = 10
	dbConnectDelay    = 3 * time.Second
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)
	seedCatalog(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateListMaintenanceDueQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

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

// connectDB opens the PostgreSQL connection with a bounded retry so the
// service survives the database coming up slightly later than it does.
func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err = gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db
		}
		log.Warnf("Database connection attempt %d/%d failed: %v", attempt, dbConnectAttempts, err)
		time.Sleep(dbConnectDelay)
	}

	log.Fatalf("Could not connect to database: %v", err)
	return nil
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&historyrepo.HistoryEntryDTO{},
		&catalogrepo.VehicleTypeDTO{},
		&catalogrepo.ModelDTO{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

// seedCatalog inserts the default vehicle type and model reference rows.
// Vehicle creation validates against these tables, so a fresh database must
// not come up empty. The repository reuses existing rows by name, so reruns
// are harmless.
func seedCatalog(db *gorm.DB) {
	ctx := context.Background()
	catalog := catalogrepo.NewGormCatalogRepository(db)

	for _, name := range []string{"Car", "Motorcycle", "Truck"} {
		if _, err := catalog.AddVehicleType(ctx, name); err != nil {
			log.Fatalf("Seeding vehicle type %q failed: %v", name, err)
		}
	}

	for _, m := range []struct{ name, make string }{
		{"Corolla", "Toyota"},
		{"Civic", "Honda"},
		{"Silverado", "Chevrolet"},
	} {
		if _, err := catalog.AddModel(ctx, m.name, m.make); err != nil {
			log.Fatalf("Seeding model %q failed: %v", m.name, err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := fleet_http.NewServer(
		app.CreateCreateVehicleCommandHandler(),
		app.CreateUpdateVehicleCommandHandler(),
		app.CreateChangeVehicleStateCommandHandler(),
		app.CreateReleaseReservationCommandHandler(),
		app.CreateUpdateOdometerCommandHandler(),
		app.CreateRegisterMaintenanceCommandHandler(),
		app.CreateGetVehicleQueryHandler(),
		app.CreateGetVehicleDetailQueryHandler(),
		app.CreateListVehiclesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
