package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func formatForFile(filename string) (ExportFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text":
		return ExportTXT, nil
	case ".png":
		return ExportPNG, nil
	case ".json":
		return ExportJSON, nil
	default:
		return 0, fmt.Errorf("unsupported export type: %q", filepath.Ext(filename))
	}
}

func exportFile(canvas *Canvas, result Result, filename string) error {
	format, err := formatForFile(filename)
	if err != nil {
		return err
	}

	switch format {
	case ExportPNG:
		return canvas.ExportToPNG(filename)
	case ExportJSON:
		if result.Err != nil {
			return result.Err
		}
		data, err := routeJSON(result)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, append(data, '\n'), 0644)
	default:
		return exportVisualTXT(canvas, filename)
	}
}

func exportVisualTXT(canvas *Canvas, filename string) error {
	lines, err := canvas.Render()
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	return file.Close()
}

func routeJSON(result Result) ([]byte, error) {
	return json.MarshalIndent(result.Route, "", "  ")
}
