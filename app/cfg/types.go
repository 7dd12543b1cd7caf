package cfg

type Cfg struct {
	// Source selection
	Channel      string
	ChannelsFile string
	Limit        int

	// Optional stages
	Social  bool
	Images  bool
	Voice   bool
	Report  bool
	Offline bool

	// Run parameters
	Date       string
	ConfigFile string
	Debug      bool

	// Application metadata
	UserAgent string
	Version   string
}
