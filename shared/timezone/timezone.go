// Package timezone pins every date the service renders or compares to the
// zone configured in APP_TIMEZONE (an IANA name, UTC when unset).
package timezone

import (
	"staywise/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	Load(config.Get().App.Timezone)
}

// Load switches the application location. Unknown names fall back to UTC.
func Load(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Format renders t in the application location.
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
