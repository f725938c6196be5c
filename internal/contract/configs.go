package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/gitplots/schema"
)

// Default values for configuration.
const (
	DefaultWindow      = 50
	DefaultPrecision   = 1
	DefaultPrefix      = "gitplots"
	DefaultPanelWidth  = 1024
	DefaultPanelHeight = 360
	DefaultTimezone    = "UTC"

	MinPanelWidth  = 200
	MinPanelHeight = 120
)

// DefaultWorkers is the default number of concurrent extractions.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a gitplots run.
// This struct is the "final, validated" config.
type Config struct {
	RootPath    string
	Categories  []string // Explicit categories (empty = every subdirectory of RootPath)
	Reader      schema.ReaderKind
	Location    *time.Location // Timezone used to turn timestamps into dates
	Workers     int
	IgnoreFiles bool // Skip plain files inside categories instead of failing
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
	Verbose     bool

	Buckets []schema.BucketWidth // Widths drawn by the plot command
	Bucket  schema.BucketWidth   // Width used by resample and summary
	Window  int                  // Trailing buckets kept (0 = all)

	Prefix      string
	OutputDir   string
	PanelWidth  int
	PanelHeight int
	Palettes    []schema.Palette
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Root        string `mapstructure:"root"`
	Categories  string `mapstructure:"categories"`
	Reader      string `mapstructure:"reader"`
	Timezone    string `mapstructure:"timezone"`
	Workers     int    `mapstructure:"workers"`
	IgnoreFiles bool   `mapstructure:"ignore-files"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Precision   int    `mapstructure:"precision"`
	Width       int    `mapstructure:"width"`
	Color       string `mapstructure:"color"`
	Verbose     bool   `mapstructure:"verbose"`

	// --- Fields from plotCmd.Flags() ---
	Buckets     string `mapstructure:"buckets"`
	Prefix      string `mapstructure:"prefix"`
	OutputDir   string `mapstructure:"output-dir"`
	PanelWidth  int    `mapstructure:"panel-width"`
	PanelHeight int    `mapstructure:"panel-height"`
	Palettes    string `mapstructure:"palettes"`

	// --- Fields shared by plotCmd, resampleCmd and summaryCmd ---
	Bucket string `mapstructure:"bucket"`
	Window int    `mapstructure:"window"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Categories = slices.Clone(c.Categories)
	clone.Buckets = slices.Clone(c.Buckets)
	clone.Palettes = slices.Clone(c.Palettes)
	return &clone
}

// CloneWithBucket creates a copy of the Config with a new bucket width and window.
func (c *Config) CloneWithBucket(width schema.BucketWidth, window int) *Config {
	clone := c.Clone()
	clone.Bucket = width
	clone.Window = window
	return clone
}

// ArtifactPath returns where a chart of the given kind and width is written.
func (c *Config) ArtifactPath(kind schema.ChartKind, width schema.BucketWidth) string {
	name := fmt.Sprintf("%s_%s_%s.png", c.Prefix, kind, width)
	return filepath.Join(c.OutputDir, name)
}

// DefaultRootPath returns $HOME/git, or "git" when the home directory is unknown.
func DefaultRootPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "git"
	}
	return filepath.Join(homeDir, "git")
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimezone(cfg, input); err != nil {
		return err
	}
	if err := processBuckets(cfg, input); err != nil {
		return err
	}
	if err := processPlotSettings(cfg, input); err != nil {
		return err
	}
	return resolveRootPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.IgnoreFiles = input.IgnoreFiles
	cfg.Verbose = input.Verbose
	cfg.Categories = schema.ParseList(input.Categories)

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Reader = schema.ReaderKind(strings.ToLower(input.Reader))
	if _, ok := schema.ValidReaderKinds[cfg.Reader]; !ok {
		return fmt.Errorf("invalid reader '%s'. must be git, gogit", input.Reader)
	}

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return nil
}

// processTimezone resolves the location used to convert timestamps into dates.
func processTimezone(cfg *Config, input *ConfigRawInput) error {
	name := strings.TrimSpace(input.Timezone)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", input.Timezone, err)
	}
	cfg.Location = loc
	return nil
}

// processBuckets validates the plot widths, the single resample width and the window.
func processBuckets(cfg *Config, input *ConfigRawInput) error {
	cfg.Buckets = nil
	for _, raw := range schema.ParseList(input.Buckets) {
		width, err := ParseBucketWidth(raw)
		if err != nil {
			return err
		}
		if !slices.Contains(cfg.Buckets, width) {
			cfg.Buckets = append(cfg.Buckets, width)
		}
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = slices.Clone(schema.DefaultBucketWidths)
	}

	cfg.Bucket = schema.MonthlyBucket
	if input.Bucket != "" {
		width, err := ParseBucketWidth(input.Bucket)
		if err != nil {
			return err
		}
		cfg.Bucket = width
	}

	if input.Window < 0 {
		return fmt.Errorf("window cannot be negative (received %d)", input.Window)
	}
	cfg.Window = input.Window
	return nil
}

// ParseBucketWidth validates a single bucket width name.
func ParseBucketWidth(raw string) (schema.BucketWidth, error) {
	width := schema.BucketWidth(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := schema.ValidBucketWidths[width]; !ok {
		return "", fmt.Errorf("invalid bucket '%s'. must be daily, weekly, monthly, yearly", raw)
	}
	return width, nil
}

// processPlotSettings validates artifact naming, panel sizes and palettes.
func processPlotSettings(cfg *Config, input *ConfigRawInput) error {
	cfg.Prefix = strings.TrimSpace(input.Prefix)
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if strings.ContainsAny(cfg.Prefix, `/\`) {
		return fmt.Errorf("prefix cannot contain path separators (received %q)", cfg.Prefix)
	}

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	if input.PanelWidth < MinPanelWidth {
		return fmt.Errorf("panel-width must be at least %d (received %d)", MinPanelWidth, input.PanelWidth)
	}
	if input.PanelHeight < MinPanelHeight {
		return fmt.Errorf("panel-height must be at least %d (received %d)", MinPanelHeight, input.PanelHeight)
	}
	cfg.PanelWidth = input.PanelWidth
	cfg.PanelHeight = input.PanelHeight

	cfg.Palettes = nil
	for _, raw := range schema.ParseList(input.Palettes) {
		p := schema.Palette(strings.ToLower(raw))
		if _, ok := schema.ValidPalettes[p]; !ok {
			return fmt.Errorf("invalid palette '%s'. must be blues, reds, greens, purples, oranges, greys", raw)
		}
		cfg.Palettes = append(cfg.Palettes, p)
	}
	if len(cfg.Palettes) == 0 {
		cfg.Palettes = slices.Clone(schema.DefaultPalettes)
	}
	return nil
}

// resolveRootPath picks the root from the positional arg, the root flag or the default.
func resolveRootPath(cfg *Config, input *ConfigRawInput) error {
	root := input.RootPathStr
	if root == "" {
		root = input.Root
	}
	if root == "" {
		root = DefaultRootPath()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	cfg.RootPath = filepath.Clean(abs)
	return nil
}

// Overrides holds per-request values that replace parts of a validated Config.
// Empty strings keep the current value.
type Overrides struct {
	Root       string
	Categories string
	Timezone   string
	Bucket     string
	Window     int
}

// RevalidateOverrides applies overrides to an already validated Config,
// re-running the checks that apply to them.
func RevalidateOverrides(cfg *Config, o Overrides) error {
	if o.Root != "" {
		if err := resolveRootPath(cfg, &ConfigRawInput{RootPathStr: o.Root}); err != nil {
			return err
		}
	}
	if o.Categories != "" {
		cfg.Categories = schema.ParseList(o.Categories)
	}
	if o.Timezone != "" {
		if err := processTimezone(cfg, &ConfigRawInput{Timezone: o.Timezone}); err != nil {
			return err
		}
	}
	if o.Bucket != "" {
		width, err := ParseBucketWidth(o.Bucket)
		if err != nil {
			return err
		}
		cfg.Bucket = width
	}
	if o.Window < 0 {
		return fmt.Errorf("window cannot be negative (received %d)", o.Window)
	}
	cfg.Window = o.Window
	return nil
}
