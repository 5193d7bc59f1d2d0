package config

const (
	// DefaultFixturesPath is the default directory scanned for fixture files
	DefaultFixturesPath = "fixtures"
	// DefaultListenAddr is the default address for the fixture server
	DefaultListenAddr = "127.0.0.1:8080"
	// DefaultRepoURL is the repository release and pull request links point at
	DefaultRepoURL = "https://github.com/facebook/react"
	// DefaultWorkers is the default number of fixture loading workers
	DefaultWorkers = 4
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Environment variables read by LoadEnv
const (
	EnvFixturesPath = "FIXCHECK_FIXTURES_DIR"
	EnvListenAddr   = "FIXCHECK_ADDR"
	EnvRepoURL      = "FIXCHECK_REPO_URL"
	EnvWorkers      = "FIXCHECK_WORKERS"
	EnvDebug        = "FIXCHECK_DEBUG"
)

// DefaultPathsToIgnore are directories never scanned for fixtures
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"build",
	"dist",
}
