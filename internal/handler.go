// Package internal provides HTTP handlers and supporting logic for the
// K-Movie Archive daily box-office page.
//
// @title           K-Movie Archive
// @version         1.0.0
// @description     Daily box-office page rendered from KOFIC open data snapshots.
//
// @BasePath        /
package internal

import (
	"context"
	"net/http"

	"K-Movie-Archive/internal/datafeed"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/route"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	feed       DataFeed
	renderer   *PageRenderer
	legacyDate string
}

// DataFeed captures the snapshot store contract.
type DataFeed interface {
	FetchLatest(ctx context.Context) (*datafeed.Pointer, error)
	FetchSnapshot(ctx context.Context, rawURL string) ([]byte, error)
	FetchDated(ctx context.Context, date string) ([]byte, error)
}

func NewHandler(feed DataFeed, legacyDate string) *Handler {
	return &Handler{feed: feed, renderer: NewPageRenderer(), legacyDate: legacyDate}
}

// renderPage godoc
// @Summary      Daily box-office page
// @Description  Resolves the current snapshot through the latest.json pointer and renders it as raw JSON plus a top-10 ranking. Any failure renders as a visible error paragraph; fragments rendered before the failure stay on the page.
// @Tags         Page
// @Produce      html
// @Success      200  {string}  string  "Rendered page"
// @Router       / [get]
func (h *Handler) renderPage(ctx context.Context, c *app.RequestContext) {
	var fragments []string

	// The whole load sequence shares one error boundary. Nothing is retried
	// and nothing already appended is rolled back.
	err := func() error {
		ptr, err := h.feed.FetchLatest(ctx)
		if err != nil {
			return err
		}
		raw, err := h.feed.FetchSnapshot(ctx, ptr.URL)
		if err != nil {
			return err
		}
		fragments = append(fragments, h.renderer.SnapshotFragment(raw))
		if list := h.renderer.TopListFragment(ptr.Date, raw); list != "" {
			fragments = append(fragments, list)
		}
		return nil
	}()
	if err != nil {
		hlog.CtxErrorf(ctx, "render page: %v", err)
		fragments = append(fragments, h.renderer.ErrorFragment(err))
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderer.Document(fragments...)))
}

// renderLegacy godoc
// @Summary      Legacy fixed-date page
// @Description  Fetches the configured dated snapshot directly, without the latest.json indirection, and renders it as raw JSON only. Failures are logged, not displayed.
// @Tags         Page
// @Produce      html
// @Success      200  {string}  string  "Rendered page"
// @Router       /legacy [get]
func (h *Handler) renderLegacy(ctx context.Context, c *app.RequestContext) {
	var fragments []string

	raw, err := h.feed.FetchDated(ctx, h.legacyDate)
	if err != nil {
		hlog.CtxErrorf(ctx, "render legacy page: %v", err)
	} else {
		fragments = append(fragments, h.renderer.SnapshotFragment(raw))
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderer.Document(fragments...)))
}

func (h *Handler) RegisterRoutes(rg *route.RouterGroup) {
	rg.GET("/", h.renderPage)

	// The legacy variant coexists with the pointer-indirected page but only
	// one of them is wired per deployment.
	if h.legacyDate != "" {
		rg.GET("/legacy", h.renderLegacy)
	}

	// healthz godoc
	// @Summary   Health check
	// @Tags      System
	// @Produce   json
	// @Success   200  {object}  map[string]string  "Service is healthy"
	// @Router    /healthz [get]
	rg.GET("/healthz", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
