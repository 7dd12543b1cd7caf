package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fplradar/radar/app/cfg"
	"github.com/fplradar/radar/app/channels"
	"github.com/fplradar/radar/app/config"
	"github.com/fplradar/radar/app/digest"
	"github.com/fplradar/radar/app/feed"
	"github.com/fplradar/radar/app/ideas"
	"github.com/fplradar/radar/app/images"
	"github.com/fplradar/radar/app/report"
	"github.com/fplradar/radar/app/social"
	"github.com/fplradar/radar/app/tasks"
	"github.com/fplradar/radar/app/tts"
)

func main() {
	// .env is optional, flags and the environment have the final say
	godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting FPL Radar", "version", appCfg.Version, "date", appCfg.Date)

	pipeline, err := config.Load(appCfg.ConfigFile)
	if err != nil {
		slog.Error("Failed to load pipeline configuration", "error", err.Error())
		os.Exit(1)
	}

	channelIDs, err := resolveChannels()
	if err != nil {
		slog.Error("Failed to resolve channel list", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("Channels resolved", "count", len(channelIDs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := tasks.NewRunner(buildTasks(pipeline, channelIDs)...)
	if err := runner.Run(ctx); err != nil {
		slog.Error("Run aborted", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Run complete", "date", appCfg.Date)
}

func resolveChannels() ([]string, error) {
	appCfg := cfg.Get()
	if appCfg.Channel != "" {
		return []string{appCfg.Channel}, nil
	}
	return channels.Load(appCfg.ChannelsFile)
}

func buildTasks(pipeline *config.Config, channelIDs []string) []tasks.TaskInterface {
	appCfg := cfg.Get()
	date := appCfg.Date
	dirs := pipeline.Dirs

	digestPath := filepath.Join(dirs.Digest, fmt.Sprintf("fpl_digest_%s.md", date))
	scriptPath := filepath.Join(dirs.Digest, fmt.Sprintf("social_%s.md", date))
	promptsDir := filepath.Join(dirs.Prompts, date)
	imagesOutDir := filepath.Join(dirs.ImagesOut, date)

	httpClient := &http.Client{Timeout: pipeline.Fetch.GetTimeout()}
	fetcher := feed.NewFetcher(httpClient,
		cmp.Or(pipeline.Fetch.BaseURL, feed.DefaultFeedBaseURL), appCfg.UserAgent)
	writer := digest.NewWriter(digestPath, pipeline.Fetch.GetPause())
	aggregator := digest.NewAggregator(fetcher, writer, appCfg.Limit)

	state := &tasks.State{}
	list := []tasks.TaskInterface{
		tasks.NewDigestTask(date, aggregator, channelIDs, state),
	}

	if appCfg.Social {
		scriptWriter := social.NewScriptWriter(scriptPath, date)
		extractor := social.NewPromptExtractor(scriptPath, promptsDir)
		list = append(list, tasks.NewSocialTask(date, scriptWriter, extractor, state))
	}

	if appCfg.Images {
		var generator images.Generator
		if appCfg.Offline {
			generator = images.NewPlaceholder()
		} else {
			generator = images.NewClient(requireAPIKey(),
				pipeline.Image.Model, pipeline.Image.Size, pipeline.Image.Retries)
		}
		renderer := images.NewRenderer(promptsDir, imagesOutDir, generator, pipeline.Fetch.GetPause())
		list = append(list, tasks.NewImagesTask(date, renderer))
	}

	if appCfg.Voice {
		client := tts.NewClient(requireAPIKey(),
			pipeline.Speech.Model, pipeline.Speech.Voice, pipeline.Speech.Format)
		audioPath := filepath.Join(dirs.Audio, date, "voiceover.mp3")
		list = append(list, tasks.NewVoiceTask(date, tts.NewSpeaker(scriptPath, audioPath, client)))
	}

	if appCfg.Report {
		dataFile := filepath.Join(dirs.Data, "ideas.json")
		exporter := ideas.NewExporter(imagesOutDir, scriptPath, dataFile, date)
		list = append(list, tasks.NewIdeasTask(date, exporter))

		mailer := report.NewMailer(pipeline.Mail.Host, pipeline.Mail.Port, pipeline.Mail.From,
			os.Getenv("REPORT_SMTP_USER"), os.Getenv("REPORT_SMTP_PASSWORD"))
		reporter := report.NewReporter(dataFile, filepath.Join(dirs.Out, "report.html"), mailer)
		list = append(list, tasks.NewReportTask(date, reporter))
	}

	return list
}

func requireAPIKey() string {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		slog.Error("OPENAI_API_KEY not set")
		os.Exit(1)
	}
	return key
}
