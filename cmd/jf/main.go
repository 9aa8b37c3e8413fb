package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kenjimiwa/jpfont/internal/config"
	"github.com/kenjimiwa/jpfont/internal/platform"
	"github.com/kenjimiwa/jpfont/pkg/jpfont"
)

var (
	osFlag     string
	configFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jf",
	Short: "jf configures plotting defaults for Japanese text",
	Long: `jf probes the operating system for an installed Japanese-capable
font family and points matplotlib's default font configuration at it,
so chart titles, axis labels and legends render Japanese text instead
of empty boxes.

Examples:
  # Detect a font and update the matplotlibrc
  jf setup

  # Show which font would be picked without changing anything
  jf resolve

  # List every installed font family
  jf list

  # Print installation instructions for the current platform
  jf guide`,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Detect a Japanese font and update the plotting configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		result, err := manager.Configure(cmd.Context())
		if err != nil {
			return fmt.Errorf("configuring fonts: %w", err)
		}

		if result.Found {
			fmt.Printf("✅ Japanese font configured: %s\n", result.Family)
			return nil
		}

		fmt.Printf("⚠️ No Japanese font found. Falling back to %s; Japanese text may not render.\n", result.Family)
		printGuide(manager.OS())
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show which font would be selected, without side effects",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		res, err := manager.Resolve(cmd.Context())
		if err != nil {
			return err
		}
		if !res.Found {
			fmt.Println("No Japanese font installed")
			return nil
		}
		fmt.Println(res.Family)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed font families",
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyCandidates, _ := cmd.Flags().GetBool("candidates")

		manager, err := newManager()
		if err != nil {
			return err
		}

		families, err := manager.Families(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing fonts: %w", err)
		}

		if onlyCandidates {
			index := jpfont.NewSetIndex(families...)
			candidates, err := manager.Candidates()
			if err != nil {
				return err
			}
			families = families[:0]
			for _, candidate := range candidates {
				if index.Has(candidate) {
					families = append(families, candidate)
				}
			}
		}

		if len(families) == 0 {
			fmt.Println("No fonts found")
			return nil
		}
		fmt.Println("Installed fonts:")
		for _, family := range families {
			fmt.Printf("  - %s\n", family)
		}
		return nil
	},
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print Japanese font installation instructions",
	RunE: func(cmd *cobra.Command, args []string) error {
		osID := osFlag
		if osID == "" {
			plat, err := platform.New()
			if err != nil {
				return err
			}
			osID = plat.OS()
		}

		guide, err := jpfont.Guide(osID)
		if err != nil {
			return err
		}
		if rendered, err := renderMarkdown(guide); err == nil {
			fmt.Print(rendered)
			return nil
		}
		fmt.Println(guide)
		return nil
	},
}

// newManager builds a manager from the host platform, the config file and
// the --os/--config overrides.
func newManager() (*jpfont.Manager, error) {
	cfgPath := configFlag
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	plat, err := platform.New()
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}

	osID := plat.OS()
	if osFlag != "" {
		osID = osFlag
	}

	rcPath := cfg.RCPath
	if rcPath == "" {
		rcPath, err = jpfont.DefaultRCPath(osID)
		if err != nil {
			return nil, err
		}
	}

	manager := jpfont.NewManagerWith(osID, plat, &jpfont.RCFile{Path: rcPath})
	manager.SetFontSize(cfg.FontSize)
	if len(cfg.Candidates) > 0 {
		manager.SetCandidates(cfg.Candidates)
	}
	return manager, nil
}

func printGuide(osID string) {
	guide, err := jpfont.Guide(osID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if rendered, err := renderMarkdown(guide); err == nil {
		fmt.Print(rendered)
		return
	}
	fmt.Println(guide)
}

func renderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(guideCmd)

	rootCmd.PersistentFlags().StringVar(&osFlag, "os", "", "Override the OS identifier (windows, macos, linux)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a jpfont config file")
	listCmd.Flags().Bool("candidates", false, "Only show installed Japanese font candidates")
}
