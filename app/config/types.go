package config

// Config is the pipeline configuration loaded from radar.yml. Every
// field has a working default; the file only overrides.
type Config struct {
	Dirs     DirSettings   `yaml:"dirs"`
	Fetch    FetchSettings `yaml:"fetch"`
	Image    ImageSettings `yaml:"image"`
	Speech   TTSSettings   `yaml:"speech"`
	Mail     MailSettings  `yaml:"mail"`
}

// DirSettings holds the output directory layout, one directory per
// pipeline artifact kind.
type DirSettings struct {
	Digest    string `yaml:"digest"`     // markdown digests and social scripts
	Prompts   string `yaml:"prompts"`    // image prompt .txt files, per date
	ImagesOut string `yaml:"images_out"` // rendered PNGs, per date
	Audio     string `yaml:"audio"`      // voice-over tracks, per date
	Data      string `yaml:"data"`       // ideas.json
	Out       string `yaml:"out"`        // HTML report
}

// FetchSettings controls feed retrieval.
type FetchSettings struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     int    `yaml:"timeout"`      // seconds
	PauseMillis int    `yaml:"pause_millis"` // courtesy pause after each per-video write
}

// ImageSettings controls the image-generation API calls.
type ImageSettings struct {
	Model   string `yaml:"model"`
	Size    string `yaml:"size"`
	Retries int    `yaml:"retries"`
}

// TTSSettings controls voice-over synthesis.
type TTSSettings struct {
	Model  string `yaml:"model"`
	Voice  string `yaml:"voice"`
	Format string `yaml:"format"`
}

// MailSettings controls report delivery. Recipient and credentials come
// from the environment (REPORT_EMAIL_TO, REPORT_SMTP_USER,
// REPORT_SMTP_PASSWORD), not the file.
type MailSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	From string `yaml:"from"`
}
