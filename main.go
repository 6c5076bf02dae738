package main

import (
	"context"
	"flag"
	"log"

	"K-Movie-Archive/api"
	"K-Movie-Archive/internal"

	_ "K-Movie-Archive/docs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/swagger"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
)

func main() {
	// Load environment variables from a .env file when present.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	port := flag.String("p", cfg.Port, "listen port")
	address := flag.String("a", cfg.Address, "listen address")
	help := flag.Bool("h", false, "show help")
	swaggerFlag := flag.Bool("swagger", false, "enable swagger documentation")

	flag.Parse()
	if *help {
		flag.Usage()
		return
	}
	h := server.Default(server.WithHostPorts(*address + ":" + *port))

	apiRoute := h.Group("/")
	api.RegisterRoutes(apiRoute, cfg)

	// 404 handler
	h.NoRoute(func(ctx context.Context, c *app.RequestContext) {
		c.JSON(404, internal.Error{Code: "NOT_FOUND", Message: "404 Not Found"})
	})

	if *swaggerFlag {
		hlog.Info("swagger enabled, see http://" + *address + ":" + *port + "/swagger/index.html")
		url := swagger.URL("http://" + *address + ":" + *port + "/swagger/doc.json")
		h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, url))
	}
	h.Spin()
}
