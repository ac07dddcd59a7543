package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/portfolio/core/carousel"
	"github.com/dmitrymomot/portfolio/core/config"
	"github.com/dmitrymomot/portfolio/core/contact"
	"github.com/dmitrymomot/portfolio/core/cookie"
	"github.com/dmitrymomot/portfolio/core/gallery"
	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/core/preference"
	"github.com/dmitrymomot/portfolio/core/server"
	"github.com/dmitrymomot/portfolio/integration/database/redis"
	"github.com/dmitrymomot/portfolio/integration/database/sqlite"
	"github.com/dmitrymomot/portfolio/pkg/ratelimiter"
	"github.com/dmitrymomot/portfolio/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	Long:  "Opens the contact archive, connects to Redis when REDIS_URL is set and serves the site until SIGINT or SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := newLogger()
	if err != nil {
		return err
	}

	var (
		siteCfg   web.Config
		serverCfg server.Config
		cookieCfg cookie.Config
		dbCfg     sqlite.Config
		redisCfg  redis.Config
		limitCfg  ratelimiter.Config
		logCfg    logger.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&siteCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&dbCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&logCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}
	if logCfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	translations, err := web.LoadTranslations()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	library, err := web.LoadContent(siteCfg.BasePath)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	cookies, err := cookie.NewFromConfig(cookieCfg, cookie.WithPath(library.BasePath()))
	if err != nil {
		return fmt.Errorf("cookies: %w", err)
	}

	db, err := sqlite.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlite.Migrate(ctx, db, log); err != nil {
		return err
	}

	siteOpts := []web.Option{
		web.WithTranslations(translations),
		web.WithContent(library),
		web.WithCookies(cookies),
		web.WithLogger(log),
		web.WithHealthCheck("sqlite", sqlite.Healthcheck(db)),
	}

	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		siteOpts = append(siteOpts,
			web.WithRedisPreferences(preference.NewRedisStore(client)),
			web.WithHealthCheck("redis", redis.Healthcheck(client)),
		)
	}

	limiterStore := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(log))
	limiter, err := ratelimiter.NewBucket(limiterStore, limitCfg)
	if err != nil {
		return err
	}

	actionLimiter, err := ratelimiter.NewBucket(limiterStore, siteCfg.ActionLimit())
	if err != nil {
		return fmt.Errorf("action rate limit: %w", err)
	}

	forwarder, err := newForwarder(ctx, siteCfg, log)
	if err != nil {
		return fmt.Errorf("contact forwarder: %w", err)
	}
	contactSvc, err := contact.NewService(forwarder,
		contact.WithStore(sqlite.NewContactStore(db)),
		contact.WithLimiter(limiter),
		contact.WithLogger(log),
	)
	if err != nil {
		return err
	}

	registry := gallery.NewRegistry(
		gallery.WithTTL(siteCfg.GalleryTTL),
		gallery.WithMaxViews(siteCfg.GalleryMaxViews),
		gallery.WithNavigatorOptions(carousel.WithCooldown(siteCfg.CarouselCooldown)),
		gallery.WithLogger(log),
	)

	site, err := web.New(siteCfg, append(siteOpts,
		web.WithGallery(registry),
		web.WithContact(contactSvc),
		web.WithRateLimiter(actionLimiter),
		web.WithHealthCheck("gallery", registry.Healthcheck),
		web.WithHealthCheck("ratelimiter", limiterStore.Healthcheck),
	)...)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(serverCfg, server.WithLogger(log))
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting portfolio",
		logger.Component("serve"),
		logger.Path(site.Base()),
		logger.Count("locales", len(translations.Languages())))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(registry.Run(gctx))
	g.Go(limiterStore.Run(gctx))
	g.Go(srv.Run(gctx, site.Handler()))

	if err := g.Wait(); err != nil {
		log.Error("portfolio stopped with error", logger.Error(err))
		return err
	}
	log.Info("portfolio stopped")
	return nil
}
