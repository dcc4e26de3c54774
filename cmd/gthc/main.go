package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/bbernstein/gthc/internal/config"
	"github.com/bbernstein/gthc/internal/correction"
	"github.com/bbernstein/gthc/internal/models"
)

// Reference station delays and positions from the model's documented example.
var (
	exampleBaseDelays = models.DelayTriple{ZHD: 2200, ZWD: 150, ZTD: 2350}
	exampleBaseCoord  = models.StationCoordinate{Latitude: 22.3, Longitude: 114.2, Height: 50}
	exampleUserCoord  = models.StationCoordinate{Latitude: 22.35, Longitude: 114.15, Height: 200}
)

const exampleDayOfYear = 150

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Height correction failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	corrector, err := correction.NewCorrector(correction.CorrectorConfig{CacheSize: cfg.ScaleHeightCacheSize})
	if err != nil {
		return fmt.Errorf("creating corrector: %w", err)
	}

	log.Info().
		Float64("dayOfYear", exampleDayOfYear).
		Bool("seasonal", cfg.UseSeasonalModel).
		Msg("Correcting example station")

	user, err := corrector.Correct(exampleBaseDelays, exampleBaseCoord, exampleUserCoord, exampleDayOfYear, cfg.UseSeasonalModel)
	if err != nil {
		return fmt.Errorf("correcting example station: %w", err)
	}

	_, err = fmt.Fprintf(out, "Corrected tropospheric delays: ZHD=%.2f, ZWD=%.2f, ZTD=%.2f mm\n", user.ZHD, user.ZWD, user.ZTD)
	return err
}
