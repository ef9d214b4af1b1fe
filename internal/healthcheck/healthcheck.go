package healthcheck

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MyelinBots/checkinbot-go/config"
	"github.com/MyelinBots/checkinbot-go/internal/logger"
	"go.uber.org/zap"
)

// Healthcheck that starts http server
func StartHealthcheck(ctx context.Context, cfg config.AppConfig) {
	// start http server
	go func() {
		port := strconv.Itoa(cfg.Port)
		err := http.ListenAndServe(":"+port, HealthCheckHandler())
		if err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("healthcheck server error", zap.Error(err))
		}
	}()

}

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
