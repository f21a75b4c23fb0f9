package appconf

// Environment describes the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Staging
	Production
)

// EnvFlagToEnvironment converts the -env flag value into an Environment,
// defaulting to Development for anything unrecognized.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "staging":
		return Staging
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Staging:
		return "staging"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the application: the port
// the server listens on, the operating environment, the accepted API keys,
// and the locations of the indicator datasets. Values come from command-line
// flags, optionally overlaid by a TOML config file.
type Config struct {
	Port          int
	Env           Environment
	ApiKeys       []string
	RateLimit     int
	DataDir       string
	GeoJSONSource string
	Verbose       bool
}
