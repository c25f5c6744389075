package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"

	"github.com/vedakart/storefront-gateway/internal/config"
	"github.com/vedakart/storefront-gateway/internal/session"
)

func NewHealthHandler(cfg *config.Config, provider *session.Provider) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-gateway",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "backend",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {

					req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Backend.BaseURL+"/health", nil)
					if err != nil {
						return fmt.Errorf("failed to build backend health request: %w", err)
					}

					resp, err := http.DefaultClient.Do(req)
					if err != nil {
						return fmt.Errorf("failed to reach backend: %w", err)
					}

					defer resp.Body.Close()

					if resp.StatusCode >= http.StatusInternalServerError {
						return fmt.Errorf("backend reported status %d", resp.StatusCode)
					}

					return nil
				},
			},
			health.Config{
				Name:      "session",
				Timeout:   time.Second,
				SkipOnErr: true,
				Check: func(context.Context) error {
					if _, ready := provider.Handle(); !ready {
						return fmt.Errorf("backend session handle not established")
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
