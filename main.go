package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Wthomas48/smart-deals-iq-sub002/app"
	"github.com/Wthomas48/smart-deals-iq-sub002/config"
	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
	"github.com/Wthomas48/smart-deals-iq-sub002/log"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
	"github.com/Wthomas48/smart-deals-iq-sub002/winsize"
)

var (
	version      = "1.0.0"
	platformFlag string
	shellFlag    bool
	jsonFlag     bool
	widthFlag    float64
	heightFlag   float64

	rootCmd = &cobra.Command{
		Use:   "sdiq",
		Short: "Smart Deals IQ viewport inspector - see how the app classifies your window.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if err := validatePlatformFlag(); err != nil {
				return err
			}

			cfg := config.LoadConfig()
			host := resolveHost(cfg)

			return app.Run(ctx, cfg, host)
		},
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print the classification for the current terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := validatePlatformFlag(); err != nil {
				return err
			}

			cfg := config.LoadConfig()
			host := resolveHost(cfg)

			dims, err := winsize.Measure(winsize.CellSize{Width: cfg.CellWidth, Height: cfg.CellHeight})
			source := "measured"
			if err != nil {
				log.Warning("could not measure terminal: %v", err)
				dims = viewport.Dimensions{Width: cfg.FallbackWidth, Height: cfg.FallbackHeight}
				source = "fallback"
			}

			return printClassification(viewport.Resolve(dims, host), host, source)
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Stream classification changes as the terminal resizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := validatePlatformFlag(); err != nil {
				return err
			}

			cfg := config.LoadConfig()
			host := resolveHost(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := viewport.NewStore(viewport.Dimensions{Width: cfg.FallbackWidth, Height: cfg.FallbackHeight}, host)
			cancel := store.Subscribe(func(info viewport.Info) {
				fmt.Printf("%s cols=%d sidebar=%v\n",
					info, viewport.GridColumns(info.Width), viewport.ShowSidebar(info.Breakpoints()))
			})
			defer cancel()

			source := winsize.NewSource(store, winsize.CellSize{Width: cfg.CellWidth, Height: cfg.CellHeight})
			if err := source.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()

			if summary := log.GetEventCounter().Summary(); summary != "" {
				fmt.Println(summary)
			}
			return nil
		},
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Resolve the classification for a hypothetical viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := validatePlatformFlag(); err != nil {
				return err
			}

			width, height := widthFlag, heightFlag
			platform := platformFlag
			shell := shellFlag

			// With no dimensions given, ask interactively.
			if width == 0 && height == 0 {
				widthStr, heightStr := "375", "812"
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Viewport width (px)").Value(&widthStr).Validate(validatePx),
						huh.NewInput().Title("Viewport height (px)").Value(&heightStr).Validate(validatePx),
						huh.NewSelect[string]().
							Title("Platform").
							Options(
								huh.NewOption("Web", config.ForcePlatformWeb),
								huh.NewOption("iOS", config.ForcePlatformIOS),
								huh.NewOption("Android", config.ForcePlatformAndroid),
								huh.NewOption("None", ""),
							).
							Value(&platform),
						huh.NewConfirm().Title("Desktop-shell embedding?").Value(&shell),
					),
				)
				if err := form.Run(); err != nil {
					return err
				}
				width, _ = strconv.ParseFloat(widthStr, 64)
				height, _ = strconv.ParseFloat(heightStr, 64)
			}

			dims := viewport.Dimensions{Width: width, Height: height}
			if err := dims.Validate(); err != nil {
				return err
			}

			host := hostenv.Flags{DesktopShell: shell}
			switch platform {
			case config.ForcePlatformIOS:
				host.IOS = true
			case config.ForcePlatformAndroid:
				host.Android = true
			case config.ForcePlatformWeb:
				host.Web = true
			}

			return printClassification(viewport.Resolve(dims, host), host, "simulated")
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved viewport state",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.DeleteState(); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("Saved viewport state has been reset")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.Path())
			if inspect.IsEnabled() {
				fmt.Printf("Inspect: %s\n", inspect.GetInspectFile())
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sdiq",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sdiq version %s\n", version)
			fmt.Printf("https://github.com/Wthomas48/smart-deals-iq-sub002/releases/tag/v%s\n", version)
		},
	}
)

// validatePlatformFlag rejects --platform values the resolver does not know.
func validatePlatformFlag() error {
	switch platformFlag {
	case "", config.ForcePlatformIOS, config.ForcePlatformAndroid, config.ForcePlatformWeb:
		return nil
	default:
		return fmt.Errorf("invalid platform: %s (must be 'ios', 'android' or 'web')", platformFlag)
	}
}

// resolveHost applies config and flag overrides on top of the detected host.
func resolveHost(cfg *config.Config) hostenv.Flags {
	host := hostenv.Detect()

	force := cfg.ForcePlatform
	if platformFlag != "" {
		force = platformFlag
	}
	switch force {
	case config.ForcePlatformIOS:
		host.IOS, host.Android, host.Web = true, false, false
	case config.ForcePlatformAndroid:
		host.IOS, host.Android, host.Web = false, true, false
	case config.ForcePlatformWeb:
		host.IOS, host.Android, host.Web = false, false, true
	}

	if cfg.ForceDesktopShell || shellFlag {
		host.DesktopShell = true
	}
	return host
}

// printClassification writes the resolved record to stdout, as JSON when
// --json is set and as the text snapshot otherwise.
func printClassification(info viewport.Info, host hostenv.Flags, source string) error {
	if jsonFlag {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(inspect.NewSnapshot().WithViewport(info, host, source).ToText())
	return nil
}

func validatePx(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&platformFlag, "platform", "p", "",
		"Platform to simulate ('ios', 'android' or 'web'). Defaults to the detected host.")
	rootCmd.Flags().BoolVar(&shellFlag, "shell", false,
		"Treat this run as embedded in the desktop shell")

	infoCmd.Flags().StringVarP(&platformFlag, "platform", "p", "",
		"Platform to simulate ('ios', 'android' or 'web')")
	infoCmd.Flags().BoolVar(&shellFlag, "shell", false,
		"Treat this run as embedded in the desktop shell")
	infoCmd.Flags().BoolVar(&jsonFlag, "json", false,
		"Print the raw classification record as JSON")

	watchCmd.Flags().StringVarP(&platformFlag, "platform", "p", "",
		"Platform to simulate ('ios', 'android' or 'web')")
	watchCmd.Flags().BoolVar(&shellFlag, "shell", false,
		"Treat this run as embedded in the desktop shell")

	simulateCmd.Flags().Float64Var(&widthFlag, "width", 0,
		"Viewport width in device-independent px (prompts when omitted)")
	simulateCmd.Flags().Float64Var(&heightFlag, "height", 0,
		"Viewport height in device-independent px (prompts when omitted)")
	simulateCmd.Flags().StringVarP(&platformFlag, "platform", "p", "",
		"Platform to simulate ('ios', 'android' or 'web')")
	simulateCmd.Flags().BoolVar(&shellFlag, "shell", false,
		"Simulate the desktop-shell embedding")
	simulateCmd.Flags().BoolVar(&jsonFlag, "json", false,
		"Print the raw classification record as JSON")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
