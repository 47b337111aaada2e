// Command appicons draws the app icon and favicon into the working
// directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alex-vit/appicons/icon"
	"github.com/rs/zerolog"
)

const confirmation = "Icons created successfully"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		exitf("appicons: %v", err)
	}
	logger := newLogger(os.Stderr, cfg.Debug)
	if err := run(cfg, os.Stdout, logger); err != nil {
		exitf("appicons: %v", err)
	}
}

// run writes every icon in order and stops at the first failure. The
// confirmation goes to stdout only once all of them are on disk.
func run(cfg config, stdout io.Writer, logger zerolog.Logger) error {
	for _, s := range icon.All() {
		path, err := icon.WriteFile(cfg.OutDir, s)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("name", s.Name).
			Str("path", path).
			Int("size", s.Size).
			Msg("wrote icon")
	}
	_, err := fmt.Fprintln(stdout, confirmation)
	return err
}
