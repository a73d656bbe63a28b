package conf

var (
	BuiltAt   string
	GitAuthor string
	GitCommit string
	Version   = "dev"
)

var (
	Conf *Config

	// ConfigFile is set by the root command before bootstrap runs.
	ConfigFile = "data/config.json"
)
