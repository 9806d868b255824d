package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Urantij/ass-parser/internal/subtitle"
)

// ScriptInfo holds the [Script Info] values written into new documents.
type ScriptInfo struct {
	ScriptType            string `toml:"script_type"`
	PlayResX              int    `toml:"play_res_x"`
	PlayResY              int    `toml:"play_res_y"`
	ScaledBorderAndShadow bool   `toml:"scaled_border_and_shadow"`
	YCbCrMatrix           string `toml:"ycbcr_matrix"`
}

// Style holds the overrides applied to the default style. Colors use
// #rrggbb or a color name.
type Style struct {
	Name           string `toml:"name"`
	FontName       string `toml:"font_name"`
	FontSize       int    `toml:"font_size"`
	PrimaryColor   string `toml:"primary_color"`
	SecondaryColor string `toml:"secondary_color"`
	OutlineColor   string `toml:"outline_color"`
	BackColor      string `toml:"back_color"`
	Bold           bool   `toml:"bold"`
	Italic         bool   `toml:"italic"`
	Outline        int    `toml:"outline"`
	Shadow         int    `toml:"shadow"`
	Alignment      int    `toml:"alignment"`
	MarginL        int    `toml:"margin_l"`
	MarginR        int    `toml:"margin_r"`
	MarginV        int    `toml:"margin_v"`
}

// Convert controls SubRip to ASS conversion.
type Convert struct {
	ConvertTimestamps bool   `toml:"convert_timestamps"`
	Color             string `toml:"color"`
	RandomColors      bool   `toml:"random_colors"`
	Seed              uint64 `toml:"seed"`
}

type Logging struct {
	Level string `toml:"level"`
}

// Config is the assparser configuration file.
type Config struct {
	ScriptInfo ScriptInfo `toml:"script_info"`
	Style      Style      `toml:"style"`
	Convert    Convert    `toml:"convert"`
	Logging    Logging    `toml:"logging"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ScriptInfo: ScriptInfo{
			ScriptType:            "v4.00+",
			PlayResX:              384,
			PlayResY:              288,
			ScaledBorderAndShadow: true,
			YCbCrMatrix:           "None",
		},
		Style: Style{
			Name:           "Default",
			FontName:       "Arial",
			FontSize:       16,
			PrimaryColor:   "#ffffff",
			SecondaryColor: "#ffffff",
			OutlineColor:   "#000000",
			BackColor:      "#000000",
			Outline:        1,
			Alignment:      2,
			MarginL:        10,
			MarginR:        10,
			MarginV:        10,
		},
		Convert: Convert{
			ConvertTimestamps: true,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/assparser/config.toml")
}

// Load reads the configuration at path, or the default location when path
// is empty, on top of Default. It reports the resolved path and whether a
// file was found there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	return filepath.Abs(pathValue)
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	if c.ScriptInfo.PlayResX <= 0 || c.ScriptInfo.PlayResY <= 0 {
		return fmt.Errorf(
			"script_info: play resolution must be positive, got %dx%d",
			c.ScriptInfo.PlayResX,
			c.ScriptInfo.PlayResY,
		)
	}
	if strings.TrimSpace(c.Style.Name) == "" {
		return errors.New("style.name must not be empty")
	}
	if strings.Contains(c.Style.Name, ",") || strings.Contains(c.Style.FontName, ",") {
		return errors.New("style: name and font_name must not contain commas")
	}
	if c.Style.FontSize <= 0 {
		return fmt.Errorf("style.font_size must be positive, got %d", c.Style.FontSize)
	}
	if c.Style.Alignment < 1 || c.Style.Alignment > 9 {
		return fmt.Errorf("style.alignment must be between 1 and 9, got %d", c.Style.Alignment)
	}

	colors := map[string]string{
		"style.primary_color":   c.Style.PrimaryColor,
		"style.secondary_color": c.Style.SecondaryColor,
		"style.outline_color":   c.Style.OutlineColor,
		"style.back_color":      c.Style.BackColor,
	}
	if c.Convert.Color != "" {
		colors["convert.color"] = c.Convert.Color
	}
	for key, value := range colors {
		if _, err := subtitle.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if c.Convert.Color != "" && c.Convert.RandomColors {
		return errors.New("convert: color and random_colors are mutually exclusive")
	}
	return nil
}

// ScriptInfoRecord returns the configured [Script Info] section.
func (c *Config) ScriptInfoRecord() subtitle.ScriptInfo {
	scaled := "no"
	if c.ScriptInfo.ScaledBorderAndShadow {
		scaled = "yes"
	}

	var info subtitle.ScriptInfo
	info.
		SetScriptType(c.ScriptInfo.ScriptType).
		SetPlayResX(fmt.Sprint(c.ScriptInfo.PlayResX)).
		SetPlayResY(fmt.Sprint(c.ScriptInfo.PlayResY)).
		SetScaledBorderAndShadow(scaled).
		SetYCbCrMatrix(c.ScriptInfo.YCbCrMatrix)
	return info
}

// StyleRecord returns the default style with the configured overrides.
// Colors must have passed Validate.
func (c *Config) StyleRecord() (subtitle.StyleFormat, error) {
	colors := make([]string, 0, 4)
	for _, value := range []string{
		c.Style.PrimaryColor,
		c.Style.SecondaryColor,
		c.Style.OutlineColor,
		c.Style.BackColor,
	} {
		rgb, err := subtitle.ParseHexColor(value)
		if err != nil {
			return subtitle.StyleFormat{}, err
		}
		colors = append(colors, subtitle.StyleColor(rgb))
	}

	style := subtitle.DefaultStyle()
	style.
		SetName(c.Style.Name).
		SetFontName(c.Style.FontName).
		SetFontSize(fmt.Sprint(c.Style.FontSize)).
		SetPrimaryColour(colors[0]).
		SetSecondaryColour(colors[1]).
		SetOutlineColour(colors[2]).
		SetBackColour(colors[3]).
		SetBold(assBool(c.Style.Bold)).
		SetItalic(assBool(c.Style.Italic)).
		SetOutline(fmt.Sprint(c.Style.Outline)).
		SetShadow(fmt.Sprint(c.Style.Shadow)).
		SetAlignment(fmt.Sprint(c.Style.Alignment)).
		SetMarginL(fmt.Sprint(c.Style.MarginL)).
		SetMarginR(fmt.Sprint(c.Style.MarginR)).
		SetMarginV(fmt.Sprint(c.Style.MarginV))
	return style, nil
}

// ASS uses -1 for true
func assBool(v bool) string {
	if v {
		return "-1"
	}
	return "0"
}

// CreateSample writes the default configuration to path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode sample config: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
