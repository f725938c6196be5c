package schema

// Custom string types for type safety.
type (
	// BucketWidth represents the resampling granularity.
	BucketWidth string

	// ChartKind represents the kind of chart rendered for a bucket width.
	ChartKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// ReaderKind represents the backend used to read commit timestamps.
	ReaderKind string

	// Palette represents the color family of a category panel.
	Palette string
)

// All bucket widths supported.
const (
	DailyBucket   BucketWidth = "daily"
	WeeklyBucket  BucketWidth = "weekly"
	MonthlyBucket BucketWidth = "monthly" // default
	YearlyBucket  BucketWidth = "yearly"
)

// All chart kinds supported.
const (
	AreaChart ChartKind = "area"
	PieChart  ChartKind = "pie"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All log readers supported.
const (
	GitReader   ReaderKind = "git" // default
	GoGitReader ReaderKind = "gogit"
)

// All palettes supported.
const (
	BluesPalette   Palette = "blues"
	RedsPalette    Palette = "reds"
	GreensPalette  Palette = "greens"
	PurplesPalette Palette = "purples"
	OrangesPalette Palette = "oranges"
	GreysPalette   Palette = "greys"
)

// DefaultPalettes is the order palettes are assigned to categories.
var DefaultPalettes = []Palette{BluesPalette, RedsPalette, GreensPalette, PurplesPalette, OrangesPalette, GreysPalette}

// AllChartKinds lists the charts written for every bucket width, in render order.
var AllChartKinds = []ChartKind{AreaChart, PieChart}

// DefaultBucketWidths mirrors the monthly, weekly and daily plots drawn by default.
var DefaultBucketWidths = []BucketWidth{MonthlyBucket, WeeklyBucket, DailyBucket}

// ValidBucketWidths lists all valid bucket widths.
var ValidBucketWidths = map[BucketWidth]struct{}{
	DailyBucket:   {},
	WeeklyBucket:  {},
	MonthlyBucket: {},
	YearlyBucket:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidReaderKinds lists all valid log readers.
var ValidReaderKinds = map[ReaderKind]struct{}{
	GitReader:   {},
	GoGitReader: {},
}

// ValidPalettes lists all valid palettes.
var ValidPalettes = map[Palette]struct{}{
	BluesPalette:   {},
	RedsPalette:    {},
	GreensPalette:  {},
	PurplesPalette: {},
	OrangesPalette: {},
	GreysPalette:   {},
}
