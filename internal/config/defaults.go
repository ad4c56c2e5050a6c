package config

// DefaultChartJSURL is the charting engine loaded by the generated page.
const DefaultChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      "site",
		DefaultLang:    "en",
		ChartJSURL:     DefaultChartJSURL,
		HighlightStyle: "monokai",
		Serve: ServeConfig{
			Port:       8080,
			LiveReload: true,
		},
		Export: ExportConfig{
			Dir:      "assets",
			Format:   FormatPNG,
			Lang:     "en",
			WidthIn:  6,
			HeightIn: 4,
		},
	}
}
