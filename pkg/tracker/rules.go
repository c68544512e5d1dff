package tracker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the threat-detection thresholds. Values are tuned for road
// transport of sealed chemical cargo and can be overridden from a YAML file.
type Rules struct {
	RouteDeviationMeters   float64 `yaml:"route_deviation_meters"`
	WeightChangeRatio      float64 `yaml:"weight_change_ratio"`
	WeightCriticalRatio    float64 `yaml:"weight_critical_ratio"`
	LowBatteryLevel        float64 `yaml:"low_battery_level"`
	TrackingHistoryCap     int     `yaml:"tracking_history_cap"`
	CheckpointRadiusMeters float64 `yaml:"checkpoint_radius_meters"`
	RouteEpsilonMeters     float64 `yaml:"route_epsilon_meters"`
	RouteMaxPoints         int     `yaml:"route_max_points"`
}

func DefaultRules() Rules {
	return Rules{
		RouteDeviationMeters:   200,
		WeightChangeRatio:      0.02,
		WeightCriticalRatio:    0.10,
		LowBatteryLevel:        15,
		TrackingHistoryCap:     500,
		CheckpointRadiusMeters: 150,
		RouteEpsilonMeters:     10,
		RouteMaxPoints:         800,
	}
}

// LoadRules overlays the defaults with the YAML file at path.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file: %w", err)
	}
	return rules, nil
}
