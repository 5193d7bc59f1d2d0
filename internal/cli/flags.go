package cli

import "fixcheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers      int
	FixturesPath string
	NameFilter   string
	FailFast     bool
	Addr         string
	URL          string
	Target       string
	Debug        bool
	ReportPath   string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		FixturesPath: f.FixturesPath,
		NameFilter:   f.NameFilter,
		FailFast:     f.FailFast,
		Addr:         f.Addr,
		URL:          f.URL,
		Target:       f.Target,
		Debug:        f.Debug,
		ReportPath:   f.ReportPath,
	}
}
