package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chemtrack.xyz/shipment-telemetry-service/pkg/bus"
	"chemtrack.xyz/shipment-telemetry-service/pkg/common"
	"chemtrack.xyz/shipment-telemetry-service/pkg/db"
	trackHttp "chemtrack.xyz/shipment-telemetry-service/pkg/http"
	"chemtrack.xyz/shipment-telemetry-service/pkg/metrics"
	"chemtrack.xyz/shipment-telemetry-service/pkg/tracker"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	trackDbType := os.Getenv(common.EnvKeyTrackDBType)
	switch trackDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown CHEMTRACK_DB_TYPE: " + trackDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTrackHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyTrackDefaultRate), 64); err != nil {
		log.Fatal("Invalid CHEMTRACK_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyTrackDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid CHEMTRACK_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	rules := tracker.DefaultRules()
	if rulesPath := strings.TrimSpace(os.Getenv(common.EnvKeyTrackRulesPath)); rulesPath != "" {
		if rules, err = tracker.LoadRules(rulesPath); err != nil {
			log.Fatalf("failed to load rules from %s: %v", rulesPath, err)
		}
	}

	logger := common.GetLogger()

	m := metrics.NewMetrics("chemtrack")

	trackerCore := tracker.Tracker{
		Db:      *dbInstance,
		Bus:     bus.NewBus(m),
		Metrics: m,
		Rules:   rules,
	}
	trackerCore.WithServices(tracker.ServiceOpts{
		Store:    trackerCore.GetIStore(),
		Detector: trackerCore.GetIDetector(),
		Rotator:  trackerCore.GetIRotator(),
		Pipeline: trackerCore.GetIPipeline(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &trackHttp.RestfulServer{
		Server:           gin.Default(),
		Tracker:          &trackerCore,
		RateLimiterStore: tracker.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
