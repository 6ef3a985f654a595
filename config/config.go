package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termfour/config.json"
	logFile = "termfour/debug.log"
)

// Board dimension limits. Columns are named a-z.
const (
	MaxWidth  = 26
	MaxHeight = 26
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	FirstColor        int `json:"first"`
	SecondColor       int `json:"second"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinningColorBG    int `json:"winning_bg"`
}

type ConfigSymbols struct {
	FirstToken  rune `json:"first"`
	SecondToken rune `json:"second"`
	EmptySlot   rune `json:"empty"`
	Cursor      rune `json:"cursor"`
	DropMarker  rune `json:"drop_marker"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	DrawWinningBackground    bool          `json:"draw_winning_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the board size offered when a new game is set up.
type GameDefaults struct {
	DefaultWidth  int `json:"default_width"`
	DefaultHeight int `json:"default_height"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

// InitConfig loads the config file from the xdg config dirs on top of the
// defaults, then applies environment overrides.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	config.ApplyEnv()
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyEnv overrides the default board size from TERMFOUR_WIDTH and TERMFOUR_HEIGHT.
func (c *Config) ApplyEnv() {
	c.Game.DefaultWidth = GetEnvAsInt("TERMFOUR_WIDTH", c.Game.DefaultWidth)
	c.Game.DefaultHeight = GetEnvAsInt("TERMFOUR_HEIGHT", c.Game.DefaultHeight)
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.FirstToken, s.SecondToken, s.EmptySlot, s.Cursor, s.DropMarker} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if err := ValidateSize(c.Game.DefaultWidth, c.Game.DefaultHeight); err != nil {
		return err
	}
	return nil
}

// ValidateSize checks that a board of width x height can be played and named.
func ValidateSize(width, height int) error {
	if width < 1 || width > MaxWidth {
		return &InvalidConfig{fmt.Sprintf("board width %d outside 1-%d", width, MaxWidth)}
	}
	if height < 1 || height > MaxHeight {
		return &InvalidConfig{fmt.Sprintf("board height %d outside 1-%d", height, MaxHeight)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// DebugLogPath returns the xdg state file used by -debug.
func DebugLogPath() (string, error) {
	return xdg.StateFile(logFile)
}

// GetEnvAsInt reads an integer environment variable, falling back to
// defaultValue when it is unset or malformed.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
