package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to winreport! Let's configure the report build.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default language.
	langPrompt := promptui.Select{
		Label: "Language shown at page load",
		Items: []string{
			"en (English)",
			"ko (한국어)",
		},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.DefaultLang = []string{"en", "ko"}[langIdx]

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 3. Preview server port.
	portPrompt := promptui.Prompt{
		Label:    "Preview server port",
		Default:  strconv.Itoa(cfg.Serve.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Serve.Port, _ = strconv.Atoi(portStr)

	// 4. Static export format.
	formatPrompt := promptui.Select{
		Label: "Static chart format",
		Items: []string{string(FormatPNG), string(FormatSVG)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("format selection: %w", err)
	}
	cfg.Export.Format = ExportFormat(format)

	// 5. Export selection.
	onlyPrompt := promptui.Prompt{
		Label: "Charts to export (comma-separated globs, empty for all)",
	}
	only, err := onlyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("export selection: %w", err)
	}
	cfg.Export.Only = SplitList(only)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// SplitList splits a comma-separated string and trims whitespace, dropping
// empty entries.
func SplitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
