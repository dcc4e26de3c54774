package correction

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bbernstein/gthc/internal/models"
	"github.com/bbernstein/gthc/internal/region"
	"github.com/bbernstein/gthc/internal/seasonal"
)

// DefaultScaleHeightCacheSize holds one entry per whole day of a leap year.
const DefaultScaleHeightCacheSize = 366

// CorrectorConfig configures a Corrector.
type CorrectorConfig struct {
	// CacheSize bounds the number of memoised seasonal scale heights.
	// Zero or negative disables the cache.
	CacheSize int
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Corrector applies the height correction with seasonal scale heights
// memoised per day of year. It is safe for concurrent use and returns the
// same values as Correct.
type Corrector struct {
	heights *lru.Cache[float64, seasonal.ScaleHeights]
	logger  zerolog.Logger
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCorrector creates a Corrector from cfg.
func NewCorrector(cfg CorrectorConfig) (*Corrector, error) {
	c := &Corrector{logger: log.Logger}
	if cfg.Logger != nil {
		c.logger = *cfg.Logger
	}

	if cfg.CacheSize > 0 {
		heights, err := lru.New[float64, seasonal.ScaleHeights](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating scale height cache: %w", err)
		}
		c.heights = heights
	}

	return c, nil
}

// Correct has the same contract as the package level Correct.
func (c *Corrector) Correct(
	base models.DelayTriple,
	baseCoord, userCoord models.StationCoordinate,
	dayOfYear float64,
	useSeasonalModel bool,
) (models.DelayTriple, error) {
	if err := validate(baseCoord, userCoord, dayOfYear, region.HongKong); err != nil {
		c.logger.Warn().Err(err).
			Float64("dayOfYear", dayOfYear).
			Interface("baseCoord", baseCoord).
			Interface("userCoord", userCoord).
			Msg("Rejected height correction")
		return models.DelayTriple{}, err
	}

	return apply(base, userCoord.Height-baseCoord.Height, c.scaleHeights(dayOfYear, useSeasonalModel)), nil
}

// CorrectBatch transfers the base station delays to every user station. The
// batch is rejected as a whole if the day of year is invalid or any station
// lies outside the model region; results are in the order of users.
func (c *Corrector) CorrectBatch(
	base models.DelayTriple,
	baseCoord models.StationCoordinate,
	users []models.StationCoordinate,
	dayOfYear float64,
	useSeasonalModel bool,
) ([]models.DelayTriple, error) {
	if err := validate(baseCoord, baseCoord, dayOfYear, region.HongKong); err != nil {
		c.logger.Warn().Err(err).
			Float64("dayOfYear", dayOfYear).
			Interface("baseCoord", baseCoord).
			Msg("Rejected height correction batch")
		return nil, err
	}
	for i, user := range users {
		if !region.HongKong.Contains(user.Latitude, user.Longitude) {
			err := NewOutOfDomainError(region.HongKong)
			c.logger.Warn().Err(err).
				Int("index", i).
				Interface("userCoord", user).
				Msg("Rejected height correction batch")
			return nil, fmt.Errorf("user station %d: %w", i, err)
		}
	}

	beta := c.scaleHeights(dayOfYear, useSeasonalModel)
	results := make([]models.DelayTriple, len(users))
	for i, user := range users {
		results[i] = apply(base, user.Height-baseCoord.Height, beta)
	}

	c.logger.Debug().
		Int("stations", len(users)).
		Float64("dayOfYear", dayOfYear).
		Bool("seasonal", useSeasonalModel).
		Msg("Applied height correction batch")

	return results, nil
}

func (c *Corrector) scaleHeights(dayOfYear float64, useSeasonalModel bool) seasonal.ScaleHeights {
	if !useSeasonalModel || c.heights == nil {
		return seasonal.Select(dayOfYear, useSeasonalModel)
	}

	if beta, ok := c.heights.Get(dayOfYear); ok {
		c.hits.Add(1)
		return beta
	}
	c.misses.Add(1)

	beta := seasonal.Seasonal(dayOfYear)
	c.heights.Add(dayOfYear, beta)
	return beta
}

// GetCacheStats returns statistics about scale height cache hits and misses
func (c *Corrector) GetCacheStats() map[string]uint64 {
	stats := map[string]uint64{
		"scale_height_hits":   c.hits.Load(),
		"scale_height_misses": c.misses.Load(),
	}
	if c.heights != nil {
		stats["scale_height_entries"] = uint64(c.heights.Len())
	}
	return stats
}

// Clear removes all memoised scale heights.
func (c *Corrector) Clear() {
	if c.heights != nil {
		c.heights.Purge()
	}
}
