package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/course-tools/thinkific-downloader/internal/client"
	"github.com/course-tools/thinkific-downloader/internal/config"
	"github.com/course-tools/thinkific-downloader/internal/course"
	"github.com/course-tools/thinkific-downloader/internal/media"
	"github.com/course-tools/thinkific-downloader/internal/pkg/logger"
	"github.com/course-tools/thinkific-downloader/internal/quiz"
	"github.com/course-tools/thinkific-downloader/internal/thinkific"
	"github.com/course-tools/thinkific-downloader/internal/ui"
	"github.com/course-tools/thinkific-downloader/internal/wistia"
)

var cfg config.AppConfig

func init() {
	rootCmd.Flags().StringVarP(&cfg.CourseLink, "course", "l", "", "course player URL (or COURSE_LINK env)")
	rootCmd.Flags().StringVarP(&cfg.CookieData, "cookie", "c", "", "session cookie header (or COOKIE_DATA env)")
	rootCmd.Flags().StringVar(&cfg.ClientDate, "date", "", "optional Date header (or CLIENT_DATE env)")
	rootCmd.Flags().StringVarP(&cfg.Quality, "quality", "q", "", "target video quality (default "+config.DefaultQuality+")")
	rootCmd.Flags().StringVarP(&cfg.DownloadFolder, "folder", "f", config.DefaultDownloadFolder, "download target folder")
	rootCmd.Flags().IntVarP(&cfg.IntervalSeconds, "interval", "i", config.DefaultIntervalSeconds, "pacing delay between lessons in seconds")
	rootCmd.Flags().StringVarP(&cfg.Policy, "policy", "p", config.PolicyQuiz, "dispatch policy: quiz or lessons-only")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", logger.DefaultLogFile, "run log file")
}

var rootCmd = &cobra.Command{
	Use:   "thinkific-downloader",
	Short: "Thinkific-downloader mirrors a Thinkific hosted course to local disk",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadEnv(&cfg)

		log := logger.New(cfg.LogFile)

		if err := config.ValidateConfig(&cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		apiClient, err := thinkific.NewClient(
			client.New(logger.DiscardLogger{}),
			cfg.CourseLink,
			cfg.CookieData,
			cfg.ClientDate,
			log,
		)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		resolver := wistia.NewResolver(apiClient.HTTPClient, client.New(logger.DiscardLogger{}), log)
		fetcher := media.NewFetcher(client.NewNoParseResponse(logger.DiscardLogger{}), log)
		materializer := quiz.NewMaterializer(apiClient, log)
		downloader := course.NewDownloader(ctx, &cfg, apiClient, resolver, fetcher, materializer, log)

		err = downloader.Run(ui.SelectChapters)
		switch {
		case err == nil:
			log.Info("Download Complete")
		case errors.Is(err, context.Canceled) || errors.Is(err, promptui.ErrInterrupt):
			log.Warn("Interrupted by user.")
		case errors.Is(err, thinkific.ErrSessionExpired):
			log.Error(err)
			os.Exit(1)
		default:
			log.Errorf("Unexpected crash: %v", err)
			os.Exit(1)
		}
	},
}

// Execute func
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
