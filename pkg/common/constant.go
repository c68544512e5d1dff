package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTrackDBType string = "CHEMTRACK_DB_TYPE"
	EnvKeyTrackDbPath string = "CHEMTRACK_DB_PATH"

	EnvKeyTrackHttpHostPort string = "CHEMTRACK_HTTP_HOST_PORT"

	EnvKeyTrackDefaultRate  string = "CHEMTRACK_DEFAULT_RATE"
	EnvKeyTrackDefaultBurst string = "CHEMTRACK_DEFAULT_BURST"

	EnvKeyTrackRulesPath string = "CHEMTRACK_RULES_PATH"

	LoggerNameTrackerCore   string = "tracker_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameEventBus      string = "event_bus"
	LoggerFieldCategory     string = "category"
	LoggerCategoryStore     string = "store"
	LoggerCategoryDetector  string = "detector"
	LoggerCategoryRotator   string = "rotator"
	LoggerCategoryPipeline  string = "pipeline"
	LoggerCategoryBus       string = "bus"
)
