// Package config loads the converter configuration.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"github.com/ukaji3/blokke-go/pkg/blokke"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/ukaji3/blokke-go/pkg/blokke/parser"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	HoldColumns struct {
		Class     int `yaml:"kla" validate:"gte=0"`
		Start     int `yaml:"akt" validate:"gte=0"`
		Remaining int `yaml:"pos" validate:"gte=0"`
	}

	BlockColumns struct {
		Class int `yaml:"kla" validate:"gte=0"`
		Group int `yaml:"blok" validate:"gte=0"`
		Code  int `yaml:"per" validate:"gte=0"`
	}

	HoldConfig struct {
		Name    string      `yaml:"name"`
		Index   int         `yaml:"index" validate:"gte=-1"`
		Range   string      `yaml:"range"`
		Columns HoldColumns `yaml:"columns"`
	}

	BlocksConfig struct {
		Name         string       `yaml:"name"`
		Index        int          `yaml:"index" validate:"gte=-1"`
		Range        string       `yaml:"range"`
		Columns      BlockColumns `yaml:"columns"`
		Marker       string       `yaml:"marker" validate:"required"`
		MaxPositions int          `yaml:"max_positions" validate:"min=1,max=16384"`
	}

	WorkbookConfig struct {
		Hold   HoldConfig   `yaml:"hold"`
		Blocks BlocksConfig `yaml:"blocks"`
	}

	PostgresConfig struct {
		DSN   string `yaml:"dsn"`
		Table string `yaml:"table" validate:"required"`
	}

	OutputConfig struct {
		Sheet       string         `yaml:"sheet" validate:"required,max=31"`
		IncludeHold bool           `yaml:"include_hold"`
		Postgres    PostgresConfig `yaml:"postgres"`
	}

	Config struct {
		Workbook WorkbookConfig `yaml:"workbook"`
		Output   OutputConfig   `yaml:"output"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := gencfg.Validate(*cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkConfig rejects unusable table selections and a file logger without
// destination.
func checkConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	hold, blocks := cfg.Workbook.Hold, cfg.Workbook.Blocks
	if hold.Name == "" && hold.Index < 0 {
		sl.ReportError(hold.Name, "Workbook.Hold.Name", "name", "required_without_index", "")
	}
	if blocks.Name == "" && blocks.Index < 0 {
		sl.ReportError(blocks.Name, "Workbook.Blocks.Name", "name", "required_without_index", "")
	}
	if file := cfg.Logging.FileLogger; file.Level != "none" && file.Destination == "" {
		sl.ReportError(file.Destination, "Logging.FileLogger.Destination", "destination", "required_unless_none", "")
	}
	if _, err := parser.ParseRange(hold.Range); hold.Range != "" && err != nil {
		sl.ReportError(hold.Range, "Workbook.Hold.Range", "range", "a1range", "")
	}
	if _, err := parser.ParseRange(blocks.Range); blocks.Range != "" && err != nil {
		sl.ReportError(blocks.Range, "Workbook.Blocks.Range", "range", "a1range", "")
	}
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and performs
// validation. An empty path returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns the default configuration file.
func Prepare() ([]byte, error) {
	return bytes.Clone(defaultConfig), nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// Options maps the workbook section onto conversion options.
func (c *Config) Options() blokke.Options {
	hold, blocks := c.Workbook.Hold, c.Workbook.Blocks
	return blokke.Options{
		Hold:   blokke.TableSpec{Name: hold.Name, Index: hold.Index, Range: hold.Range},
		Blocks: blokke.TableSpec{Name: blocks.Name, Index: blocks.Index, Range: blocks.Range},
		HoldLayout: models.HoldLayout{
			Class:     hold.Columns.Class,
			Start:     hold.Columns.Start,
			Remaining: hold.Columns.Remaining,
		},
		BlockLayout: models.BlockLayout{
			Class: blocks.Columns.Class,
			Group: blocks.Columns.Group,
			Code:  blocks.Columns.Code,
		},
		Marker:       blocks.Marker,
		MaxPositions: blocks.MaxPositions,
	}
}
