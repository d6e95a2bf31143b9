package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	_ "dispatch/docs"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// @title			Dispatch API
// @version		1.0
// @description	Package delivery coordination service.
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	configs := getConfigs()

	gormDB, err := postgres.OpenDB(makeDSN(configs))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCountUnassignedPackagesQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, logger, configs.HTTPPort)
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
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTTTL:     goDotEnvVariable("JWT_TTL"),
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

func makeDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func startWebServer(app cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateAuthenticateUserCommandHandler(),
		app.CreateUpdateUserCommandHandler(),
		app.CreateDeleteUserCommandHandler(),
		app.CreateSelectPackagesCommandHandler(),
		app.CreateEditPackageCommandHandler(),
		app.CreateCreatePackageCommandHandler(),
		app.CreateUpdatePackageCommandHandler(),
		app.CreateDeletePackageCommandHandler(),
		app.CreateGetAllPackagesQueryHandler(),
		app.CreateGetDeliveryPackagesQueryHandler(),
		app.CreateGetDeliveryUsersQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e, app.TokenSigner())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
