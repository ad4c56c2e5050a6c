package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/dom"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/page"
	"github.com/riftlens/winreport/internal/palette"
	"github.com/riftlens/winreport/internal/site"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [index.html]",
	Short: "Check a built report page without a browser",
	Long: `Loads a generated page into an in-memory document, runs the page runtime
against it with a recording chart engine, and reports mount points, charts
created and bound handlers. Exits with an error when a chart has no mount.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("switch", "", "click the language toggle for this language before reporting")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = filepath.Join(cfg.OutputDir, site.IndexFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening page: %w\nRun `winreport build` first", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	engine := &page.RecordingEngine{}
	rt, err := page.Boot(doc, doc.Window(), engine, palette.Default())
	if err != nil {
		return fmt.Errorf("booting page: %w", err)
	}

	if target, _ := cmd.Flags().GetString("switch"); target != "" {
		if btn, ok := doc.QuerySelector(fmt.Sprintf(`[data-lang=%q]`, target)); ok {
			rt.Dispatch(page.EventClick, btn)
		} else {
			rt.Switcher.Switch(target)
		}
	}

	var missing []string
	fmt.Printf("Page: %s\n", path)
	for _, v := range i18n.Variants {
		wrapper, ok := doc.GetElementByID(v.WrapperID())
		state := "missing"
		if ok {
			state = "visible"
			if wrapper.ClassList().Contains(page.HiddenClass) {
				state = "hidden"
			}
		}
		mounted := 0
		for _, k := range charts.Kinds {
			if _, ok := doc.GetElementByID(v.ID(k.Mount())); ok {
				mounted++
			} else {
				missing = append(missing, v.ID(k.Mount()))
			}
		}
		fmt.Printf("  %-3s %-8s %d/%d mount points\n", v, state, mounted, len(charts.Kinds))
	}

	var clicks, scrolls int
	for _, r := range rt.Registrations() {
		switch r.Event {
		case page.EventClick:
			clicks++
		case page.EventScroll:
			scrolls++
		}
	}
	fmt.Printf("  lang=%s charts=%d click-handlers=%d scroll-handlers=%d\n",
		doc.DocumentElement().Attr("lang"), rt.Charts(), clicks, scrolls)

	if len(missing) > 0 {
		return fmt.Errorf("%d charts have no mount point: %v", len(missing), missing)
	}
	return nil
}
