package config

// DefaultOutputFileName is the file name used when neither the --output
// flag nor settings override it. The file is placed inside the repo path.
const DefaultOutputFileName = "gitbranch.diff"

// DefaultExcludes returns the seed exclusion list used when settings do
// not override it. Constructed fresh per call so no caller can mutate a
// shared default.
func DefaultExcludes() []string {
	return []string{"src/Migration/Infrastructure/Persistence/Migrations/"}
}

// Settings represents user-level configuration stored in
// ~/.diffsnap/settings.yaml. Settings are global and apply to every
// diffsnap invocation.
type Settings struct {
	// Defaults configures per-invocation defaults for diff snapshots.
	Defaults DefaultsConfig `yaml:"defaults,omitempty" mapstructure:"defaults"`

	// Logging configures file-based logging.
	// File logging is enabled by default; disable via settings.yaml.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
}

// DefaultsConfig configures defaults for the diff commands.
type DefaultsConfig struct {
	// OutputFileName is the file name written inside the repository path
	// when --output is not given (default: gitbranch.diff).
	OutputFileName string `yaml:"output_filename,omitempty" mapstructure:"output_filename"`

	// Exclude is the seed list of path patterns excluded from every diff.
	// Patterns given with --exclude are appended to this list.
	Exclude []string `yaml:"exclude,omitempty" mapstructure:"exclude"`
}

// LoggingConfig configures file-based logging.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: true).
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 50).
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7).
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3).
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() *Settings {
	return &Settings{
		Defaults: DefaultsConfig{
			OutputFileName: DefaultOutputFileName,
			Exclude:        DefaultExcludes(),
		},
	}
}

// OutputFileNameOrDefault returns the configured output file name,
// falling back to DefaultOutputFileName.
func (s *Settings) OutputFileNameOrDefault() string {
	if s.Defaults.OutputFileName != "" {
		return s.Defaults.OutputFileName
	}
	return DefaultOutputFileName
}

// ExcludeSeed returns a fresh copy of the configured exclusion seed,
// falling back to DefaultExcludes. Callers may append freely.
func (s *Settings) ExcludeSeed() []string {
	if len(s.Defaults.Exclude) == 0 {
		return DefaultExcludes()
	}
	seed := make([]string, len(s.Defaults.Exclude))
	copy(seed, s.Defaults.Exclude)
	return seed
}

// DefaultSettingsYAML is the commented template written by `diffsnap config init`.
const DefaultSettingsYAML = `# diffsnap user settings
#
# defaults:
#   output_filename: gitbranch.diff
#   exclude:
#     - src/Migration/Infrastructure/Persistence/Migrations/
#
# logging:
#   file_enabled: true
#   max_size_mb: 50
#   max_age_days: 7
#   max_backups: 3
`
