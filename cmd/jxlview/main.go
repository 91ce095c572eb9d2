package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/bnema/jxlview/config"
	"github.com/bnema/jxlview/internal/adapter/converter/jxltools"
	"github.com/bnema/jxlview/internal/adapter/gui"
	"github.com/bnema/jxlview/internal/adapter/raster"
	"github.com/bnema/jxlview/internal/infrastructure/logger"
	"github.com/bnema/jxlview/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	converter := jxltools.NewConverter(cfg.EncoderBin, cfg.DecoderBin)

	fyneApp := app.NewWithID("com.bnema.jxlview")

	// Gate the main interface on both tools answering a version query.
	if err := converter.Available(); err != nil {
		logger.Errorf("tool probe failed: %v", err)
		errWin := gui.ShowToolError(fyneApp, err)
		errWin.ShowAndRun()
		os.Exit(1)
	}

	logger.Infof("starting jxlview (encoder=%s, decoder=%s)", cfg.EncoderBin, cfg.DecoderBin)

	sess := service.NewSession(converter, raster.NewLoader())

	window := fyneApp.NewWindow("jxlview - JPEG XL Converter")
	gui.NewUI(window, sess, cfg.DefaultQuality)
	window.ShowAndRun()
}
