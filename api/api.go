package api

import (
	"K-Movie-Archive/internal"
	"K-Movie-Archive/internal/datafeed"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterRoutes(h *route.RouterGroup, cfg *internal.Config) {
	// Build the data feed client from configuration.
	feed, err := datafeed.NewClient(cfg.DataURL)
	if err != nil {
		hlog.Warnf("data feed client not configured: %v", err)
	}

	handler := internal.NewHandler(feed, cfg.LegacyDate)
	handler.RegisterRoutes(h)
}
