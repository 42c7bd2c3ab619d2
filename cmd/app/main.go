package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"harvesthub/cmd"
	httpin "harvesthub/internal/adapters/in/http"
	"harvesthub/internal/adapters/out/kafka"
	"harvesthub/internal/core/ports"
	"harvesthub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	publisher := createPublisher(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(root.CreateAdvanceOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		MigrationsDir:          goDotEnvVariable("MIGRATIONS_DIR"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
	}
	if config.MigrationsDir == "" {
		config.MigrationsDir = "migrations"
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := goose.Up(sqlDB, configs.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to init gorm: %v", err)
	}
	return gormDB
}

// createPublisher returns a Kafka-backed publisher when a broker is
// configured, and a no-op otherwise so the service can run standalone.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.KafkaHost == "" {
		logger.Info("Kafka host is not configured, order events will not be published")
		return kafka.NewNoopPublisher()
	}

	publisher, err := kafka.NewPublisher([]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic)
	if err != nil {
		log.Fatalf("Failed to create Kafka publisher: %v", err)
	}
	return publisher
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateStartPreparingCommandHandler(),
		root.CreateMarkReadyCommandHandler(),
		root.CreateMarkPickedUpCommandHandler(),
		root.CreateClaimDeliveryCommandHandler(),
		root.CreateConfirmDeliveryCommandHandler(),
		root.CreateGetBusinessOrdersQueryHandler(),
		root.CreateGetAvailableJobsQueryHandler(),
		root.CreateGetCourierOrdersQueryHandler(),
		root.CreateGetCourierEarningsQueryHandler(),
		root.CreateGetConsumerOrdersQueryHandler(),
		root.CreateGetBusinessStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
