package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Source struct {
		FileID  string `yaml:"fileId"`
		Timeout int    `yaml:"timeout"`
		Retries int    `yaml:"retries"`
	} `yaml:"source"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Screen struct {
		LimitUpThreshold float64 `yaml:"limitUpThreshold"`
		TopN             int     `yaml:"topN"`
		VolumeWindow     int     `yaml:"volumeWindow"`
		VolumeMultiple   float64 `yaml:"volumeMultiple"`
	} `yaml:"screen"`
	Schedule struct {
		Enabled  bool   `yaml:"enabled"`
		Cron     string `yaml:"cron"`
		Timezone string `yaml:"timezone"`
	} `yaml:"schedule"`
}

// volumeWindows are the rolling-average windows the screener accepts.
var volumeWindows = []int{5, 10, 20}

func validWindow(w int) bool {
	for _, allowed := range volumeWindows {
		if w == allowed {
			return true
		}
	}
	return false
}

// LoadConfig reads the YAML config at path. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.applyDefaults()

	if !validWindow(config.Screen.VolumeWindow) {
		return nil, fmt.Errorf("invalid volume window %d, must be one of %v", config.Screen.VolumeWindow, volumeWindows)
	}
	if config.Screen.VolumeMultiple <= 0 {
		return nil, fmt.Errorf("volume multiple must be positive, got %v", config.Screen.VolumeMultiple)
	}
	if config.Screen.TopN <= 0 {
		return nil, fmt.Errorf("topN must be positive, got %d", config.Screen.TopN)
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 60
	}
	if c.Source.Retries == 0 {
		c.Source.Retries = 3
	}
	if c.Database.Path == "" {
		c.Database.Path = "screener.db"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Screen.LimitUpThreshold == 0 {
		c.Screen.LimitUpThreshold = 9.9
	}
	if c.Screen.TopN == 0 {
		c.Screen.TopN = 10
	}
	if c.Screen.VolumeWindow == 0 {
		c.Screen.VolumeWindow = 5
	}
	if c.Screen.VolumeMultiple == 0 {
		c.Screen.VolumeMultiple = 2.0
	}
	if c.Schedule.Cron == "" {
		// TWSE publishes the day's margin figures in the evening.
		c.Schedule.Cron = "30 18 * * *"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Asia/Taipei"
	}
}
