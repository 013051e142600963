package main

import (
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/view"
)

const (
	defaultViewport = 900
	minViewport     = 200
	maxStaggerItems = 500
	maxMillis       = 24 * 60 * 60 * 1000
)

type blockConfig struct {
	ID     string                 `json:"id"`
	Config motion.AnimationConfig `json:"config"`
}

func setupRoutes(r *gin.Engine, portfolio *content.Portfolio, cfg Config) {
	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	// Page shell; everything on it is filled in from the API
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Raw content
	api.GET("/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, portfolio)
	})

	// View model as it looks on first paint
	api.GET("/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, view.Build(portfolio, view.Initial(), time.Now().Year()))
	})

	// View model after mounting, waiting `elapsed` ms and scrolling to `offset`
	api.GET("/preview", func(c *gin.Context) {
		viewport, err := floatQuery(c, "viewport", defaultViewport)
		if err == nil && viewport < minViewport {
			err = fmt.Errorf("viewport must be at least %d", minViewport)
		}
		if err != nil {
			badRequest(c, err)
			return
		}
		offset, err := floatQuery(c, "offset", 0)
		if err == nil && offset < 0 {
			err = fmt.Errorf("offset must not be negative")
		}
		if err != nil {
			badRequest(c, err)
			return
		}
		elapsed, err := millisQuery(c, "elapsed", 0)
		if err != nil {
			badRequest(c, err)
			return
		}

		clock := motion.NewManualClock(time.Now())
		session := view.NewSession(portfolio, viewport, clock)
		defer session.Close()

		clock.Advance(elapsed)
		session.ScrollPath(offset, viewport/4)

		c.JSON(http.StatusOK, gin.H{
			"documentHeight": session.DocumentHeight(),
			"page":           session.Page(time.Now().Year()),
		})
	})

	motionGroup := api.Group("/motion")

	motionGroup.GET("/presets", func(c *gin.Context) {
		c.JSON(http.StatusOK, motion.Presets())
	})

	motionGroup.GET("/presets/:name", func(c *gin.Context) {
		preset, ok := motion.AnimationPreset(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset " + strconv.Quote(c.Param("name"))})
			return
		}
		c.JSON(http.StatusOK, preset)
	})

	// Trigger settings for every observed block
	motionGroup.GET("/blocks", func(c *gin.Context) {
		var blocks []blockConfig
		for _, b := range view.Blocks(portfolio) {
			blocks = append(blocks, blockConfig{ID: b.ID, Config: motion.Merge(motion.FadeUp, b.Override)})
		}
		c.JSON(http.StatusOK, gin.H{
			"rootMarginBottom": motion.RootMarginBottom,
			"blocks":           blocks,
		})
	})

	motionGroup.GET("/stagger", func(c *gin.Context) {
		count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
		if err != nil || count < 0 || count > maxStaggerItems {
			badRequest(c, fmt.Errorf("count must be between 0 and %d", maxStaggerItems))
			return
		}
		var override motion.StaggerOverride
		if c.Query("base") != "" {
			d, err := millisQuery(c, "base", 0)
			if err != nil {
				badRequest(c, err)
				return
			}
			override.BaseDelay = &d
		}
		if c.Query("step") != "" {
			d, err := millisQuery(c, "step", 0)
			if err != nil {
				badRequest(c, err)
				return
			}
			override.StaggerDelay = &d
		}

		stagger := motion.MergeStagger(motion.StaggerDefault, override)
		delays := make([]int64, 0, count)
		for _, d := range motion.StaggerDelays(count, stagger) {
			delays = append(delays, d.Milliseconds())
		}
		c.JSON(http.StatusOK, gin.H{"config": stagger, "delays": delays})
	})

	motionGroup.GET("/bezier/:kind", func(c *gin.Context) {
		kind, ok := motion.ParseCurveKind(c.Param("kind"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown curve " + strconv.Quote(c.Param("kind"))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"kind": kind, "curve": motion.CubicBezierFor(kind)})
	})

	// Pure scroll reducers for a (prev, offset) pair
	motionGroup.GET("/scroll", func(c *gin.Context) {
		var prev, cur motion.Snapshot
		var err error
		if prev.Offset, err = floatQuery(c, "prev", 0); err != nil {
			badRequest(c, err)
			return
		}
		if cur.Offset, err = floatQuery(c, "offset", 0); err != nil {
			badRequest(c, err)
			return
		}
		if cur.DocumentHeight, err = floatQuery(c, "doc", 0); err != nil {
			badRequest(c, err)
			return
		}
		if cur.ViewportHeight, err = floatQuery(c, "viewport", defaultViewport); err != nil {
			badRequest(c, err)
			return
		}
		speed, err := floatQuery(c, "speed", motion.DefaultParallaxSpeed)
		if err != nil {
			badRequest(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"navbar":   motion.Navbar(prev, cur),
			"progress": motion.Progress(cur),
			"parallax": motion.ParallaxOffset(cur, speed),
		})
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func floatQuery(c *gin.Context, name string, def float64) (float64, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: not a number", name)
	}
	return f, nil
}

func millisQuery(c *gin.Context, name string, def time.Duration) (time.Duration, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > maxMillis {
		return 0, fmt.Errorf("%s: expected between 0 and %d milliseconds", name, maxMillis)
	}
	return time.Duration(n) * time.Millisecond, nil
}
