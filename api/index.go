package handler

import (
	"mallbook/config"
	"mallbook/di"
	"mallbook/shared/logger"
	transport "mallbook/transport/http"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler is the serverless entrypoint, the app is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Refusing to start with incomplete configuration")
		}

		logger.Configure(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
