package config

// ExportFormat is the file type written by the static chart export.
type ExportFormat string

const (
	FormatPNG ExportFormat = "png"
	FormatSVG ExportFormat = "svg"
)

// ExportAllLangs as export.lang exports both variants.
const ExportAllLangs = "all"

// Config is the top-level winreport configuration, corresponding to .winreport.yml.
type Config struct {
	OutputDir      string       `yaml:"output_dir" koanf:"output_dir"`
	ContentDir     string       `yaml:"content_dir,omitempty" koanf:"content_dir"` // empty uses the built-in report text
	DefaultLang    string       `yaml:"default_lang" koanf:"default_lang"`
	ChartJSURL     string       `yaml:"chartjs_url" koanf:"chartjs_url"`
	HighlightStyle string       `yaml:"highlight_style" koanf:"highlight_style"`
	Serve          ServeConfig  `yaml:"serve" koanf:"serve"`
	Export         ExportConfig `yaml:"export" koanf:"export"`
}

// ServeConfig holds settings for the local preview server.
type ServeConfig struct {
	Port       int  `yaml:"port" koanf:"port"`
	AllowAll   bool `yaml:"allow_all" koanf:"allow_all"`
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}

// ExportConfig holds settings for static chart images.
type ExportConfig struct {
	Dir      string       `yaml:"dir" koanf:"dir"`
	Format   ExportFormat `yaml:"format" koanf:"format"`
	Lang     string       `yaml:"lang" koanf:"lang"`
	WidthIn  float64      `yaml:"width_in" koanf:"width_in"`
	HeightIn float64      `yaml:"height_in" koanf:"height_in"`
	Only     []string     `yaml:"only" koanf:"only"`
}
