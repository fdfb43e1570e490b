package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 320
	minHeight     = 240
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Maintain original order (no sort)
)

// Zoom step bounds
const (
	defaultZoomStep = 1.25
	minZoomStep     = 1.01
	maxZoomStep     = 4.0
)

const defaultBackground = "#202020"

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth      int                 `json:"window_width"`
	WindowHeight     int                 `json:"window_height"`
	BackgroundColor  string              `json:"background_color"` // #RRGGBB or #RRGGBBAA
	HelpFontSize     float64             `json:"help_font_size"`
	SortMethod       int                 `json:"sort_method"`
	Fullscreen       bool                `json:"fullscreen"`
	CacheSize        int                 `json:"cache_size"`
	FitWindowToImage bool                `json:"fit_window_to_image"`
	ZoomStep         float64             `json:"zoom_step"`
	Keybindings      map[string][]string `json:"keybindings"`
	Mousebindings    map[string][]string `json:"mousebindings"`
	Mouse            MouseSettings       `json:"mouse"`
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "vix.json"
	}
	return filepath.Join(homeDir, ".vix.json")
}

func defaultConfig() Config {
	return Config{
		WindowWidth:      defaultWidth,
		WindowHeight:     defaultHeight,
		BackgroundColor:  defaultBackground,
		HelpFontSize:     24.0,
		SortMethod:       SortNatural,
		Fullscreen:       false,
		CacheSize:        defaultCacheSize,
		FitWindowToImage: false,
		ZoomStep:         defaultZoomStep,
		Keybindings:      GetDefaultKeybindings(),
		Mousebindings:    GetDefaultMousebindings(),
		Mouse:            GetDefaultMouseSettings(),
	}
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()
	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	if _, err := parseHexColor(config.BackgroundColor); err != nil {
		log.Printf("Warning: Invalid background color %q, using default: %v", config.BackgroundColor, err)
		config.BackgroundColor = defaultBackground
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid background color: %v", err))
	}

	// Minimum 12px for readability
	if config.HelpFontSize < 12.0 {
		config.HelpFontSize = 24.0
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortNatural
	}

	if config.CacheSize < 1 {
		config.CacheSize = defaultCacheSize
	} else if config.CacheSize > 256 {
		config.CacheSize = 256
	}

	if config.ZoomStep < minZoomStep || config.ZoomStep > maxZoomStep {
		config.ZoomStep = defaultZoomStep
	}

	if config.Keybindings == nil {
		config.Keybindings = GetDefaultKeybindings()
	} else {
		fillMissingBindings(config.Keybindings, GetDefaultKeybindings())
		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = GetDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	if config.Mousebindings == nil {
		config.Mousebindings = GetDefaultMousebindings()
	} else {
		fillMissingBindings(config.Mousebindings, GetDefaultMousebindings())
	}

	if config.Mouse.WheelSensitivity <= 0 {
		config.Mouse = GetDefaultMouseSettings()
	}

	result.Config = config
	return result
}

// fillMissingBindings adds default bindings for actions the config file
// does not mention, so new actions appear without editing the file.
func fillMissingBindings(bindings, defaults map[string][]string) {
	for action, keys := range defaults {
		if _, exists := bindings[action]; !exists {
			bindings[action] = keys
		}
	}
}

// parseHexColor parses #RRGGBB or #RRGGBBAA.
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color must start with #")
	}
	var c color.NRGBA
	c.A = 0xFF
	switch len(s) {
	case 7:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		return c, err
	case 9:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		return c, err
	default:
		return color.NRGBA{}, fmt.Errorf("color must be #RRGGBB or #RRGGBBAA")
	}
}

// backgroundColor returns the parsed canvas background, falling back
// to the default when the config value is unparseable.
func (c Config) backgroundColor() color.NRGBA {
	col, err := parseHexColor(c.BackgroundColor)
	if err != nil {
		col, _ = parseHexColor(defaultBackground)
	}
	return col
}

// getSortMethodName returns the human-readable name of a sort method.
func getSortMethodName(sortMethod int) string {
	return GetSortStrategy(sortMethod).Name()
}

func saveConfig(config Config) {
	saveConfigToPath(config, getConfigPath())
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}
