package main

type ExportFormat int

const (
	ExportTXT ExportFormat = iota
	ExportPNG
	ExportJSON
)

const (
	defaultSnapDistance = 10.0
	// World units per character cell.
	defaultCellWidth  = 10.0
	defaultCellHeight = 20.0
	// Margin around the scene, in cells.
	renderPadding = 2
	// Margin around the scene in PNG exports, in pixels.
	imagePadding = 40
	pointRadius  = 8
	// Largest text grid, in cells per side, and PNG, in pixels per side.
	maxGridSize  = 1000
	maxImageSize = 10000
)

// Palette.
const (
	rect1Fill   = "#e6e6fa"
	rect1Border = "#b5b5d6"
	rect2Fill   = "#ffe4e1"
	rect2Border = "#e7b5b5"
	point1Fill  = "#b5e6d0"
	point2Fill  = "#f7b6b2"
	pointBorder = "#e07a7a"
	routeColor  = "#a3b7e6"
	errorColor  = "#e07a7a"
)
