package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/corey/spahost/internal/adapters/fsnotify"
	"github.com/corey/spahost/internal/adapters/web"
	"github.com/corey/spahost/internal/app"
	"github.com/corey/spahost/internal/ports"
)

var rootCmd = &cobra.Command{
	Use:   "spahost",
	Short: "spahost — static SPA bundle server",
	Long:  "Serves a single-page application bundle over HTTP: index.html at /, every other asset by request path.",
	RunE:  runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	paths, err := app.NewPathsFromExecutable()
	if err != nil {
		return err
	}

	// A missing bundle is a deploy problem, not a startup failure: the
	// server still answers (with 404s) until the assets land.
	if err := paths.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "⚡ warning: bundle not deployed: %v\n", err)
	}

	srv := web.NewServer(paths)
	if err := srv.Start(cfg.Host, cfg.Port); err != nil {
		return err
	}
	defer srv.Stop()

	if w := startBundleWatcher(paths); w != nil {
		defer w.Stop()
	}

	fmt.Printf("⚡ hosting %s at %s\n", paths.Name(), cfg.Addr())

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\n⚡ shutting down...")
	return nil
}

// startBundleWatcher logs a line per changed asset so redeploys are visible
// in the process log. Returns nil when the watcher could not start: watch
// failures degrade to a warning — serving never depends on the watcher.
func startBundleWatcher(paths *app.Paths) ports.Watcher {
	w, err := fsw.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚡ warning: bundle watcher unavailable: %v\n", err)
		return nil
	}

	err = w.Watch(paths.AssetRoot, func(filePath string) {
		rel, err := filepath.Rel(paths.AssetRoot, filePath)
		if err != nil {
			rel = filePath
		}
		log.Printf("bundle changed: %s", rel)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚡ warning: bundle watcher unavailable: %v\n", err)
		w.Stop()
		return nil
	}
	return w
}
