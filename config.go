package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"elbow/route"
)

type Config struct {
	SaveDirectory string
	Tolerance     float64
	SnapDistance  float64
	LogLevel      slog.Level
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Tolerance:     route.DefaultTolerance,
		SnapDistance:  defaultSnapDistance,
		LogLevel:      slog.LevelWarn,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".elbowrc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

// parseConfig reads key=value lines. Unknown keys and bad values are skipped.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "tolerance", "epsilon":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 && !math.IsInf(v, 0) {
				config.Tolerance = v
			}
		case "snapdistance", "snap_distance", "snap":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 && !math.IsInf(v, 0) {
				config.SnapDistance = v
			}
		case "loglevel", "log_level":
			var level slog.Level
			if err := level.UnmarshalText([]byte(value)); err == nil {
				config.LogLevel = level
			}
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func (c *Config) Builder() *route.Builder {
	return route.New(route.WithTolerance(c.Tolerance))
}
