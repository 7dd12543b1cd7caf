package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Source selection
	Channel      string `long:"channel" env:"RADAR_CHANNEL" description:"Single channel id to process (overrides the channels file)"`
	ChannelsFile string `long:"channels-file" env:"RADAR_CHANNELS_FILE" default:"./channels.txt" description:"Channel list file, one id per line"`
	Limit        int    `long:"limit" env:"RADAR_LIMIT" default:"5" description:"Maximum videos kept per channel"`

	// Optional stages
	Social  bool `long:"social" env:"RADAR_SOCIAL" description:"Also draft the social script and image prompts"`
	Images  bool `long:"images" env:"RADAR_IMAGES" description:"Also render images from the prompt files"`
	Voice   bool `long:"voice" env:"RADAR_VOICE" description:"Also synthesize the voice-over audio track"`
	Report  bool `long:"report" env:"RADAR_REPORT" description:"Also build (and optionally email) the HTML report"`
	Offline bool `long:"offline" env:"RADAR_OFFLINE" description:"Render placeholder images instead of calling the image API"`

	// Run parameters
	Date       string `long:"date" env:"RADAR_DATE" description:"Run date (YYYY-MM-DD, defaults to today)"`
	ConfigFile string `long:"config" env:"RADAR_CONFIG" default:"./radar.yml" description:"Pipeline configuration file"`
	Debug      bool   `long:"debug" env:"RADAR_DEBUG" description:"Enable debug logging"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"RADAR_USER_AGENT" default:"FPL Radar/1.0" description:"User agent string for HTTP requests"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	// The only limit validation: clamp to at least one video per channel.
	if raw.Limit < 1 {
		raw.Limit = 1
	}

	cfg := &Cfg{
		Channel:      raw.Channel,
		ChannelsFile: raw.ChannelsFile,
		Limit:        raw.Limit,
		Social:       raw.Social,
		Images:       raw.Images,
		Voice:        raw.Voice,
		Report:       raw.Report,
		Offline:      raw.Offline,
		Date:         cmp.Or(raw.Date, time.Now().UTC().Format("2006-01-02")),
		ConfigFile:   raw.ConfigFile,
		Debug:        raw.Debug,
		UserAgent:    raw.UserAgent,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
