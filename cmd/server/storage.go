package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/storage"
)

// InitStorage selects and returns the configured artwork storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces artwork storage")
		return spacesStorage
	}

	log.Info().Msg("using local artwork storage in ./artwork")
	return storage.NewLocalStorage("./artwork")
}
