// Package config loads application settings from JSON files using the
// fs.FS interface, with environment variable overrides on top.
package config

// AppConfig holds all loaded settings.
type AppConfig struct {
	Window WindowConfig `json:"window"`
	Loop   LoopConfig   `json:"loop"`
}

// WindowConfig describes the window the backend creates at startup.
type WindowConfig struct {
	Title  string `json:"title" env:"APRICOT_WINDOW_TITLE"`
	Width  int    `json:"width" env:"APRICOT_WINDOW_WIDTH"`
	Height int    `json:"height" env:"APRICOT_WINDOW_HEIGHT"`
	Scale  int    `json:"scale" env:"APRICOT_WINDOW_SCALE"`
}

// LoopConfig describes the fixed-timestep scheduler.
type LoopConfig struct {
	// StepMillis is the fixed simulation step in milliseconds.
	StepMillis int `json:"stepMillis" env:"APRICOT_STEP_MILLIS"`
	// MaxCatchUp bounds accumulated lag to this many steps.
	MaxCatchUp int `json:"maxCatchUp" env:"APRICOT_MAX_CATCH_UP"`
}

func (c *AppConfig) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "Apricot Application"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 640
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 360
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = 2
	}
	if c.Loop.StepMillis <= 0 {
		c.Loop.StepMillis = 16
	}
	if c.Loop.MaxCatchUp <= 0 {
		c.Loop.MaxCatchUp = 8
	}
}
