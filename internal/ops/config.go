// Package ops loads the runtime configuration of the trading binaries.
package ops

import (
	"os"
	"path/filepath"

	stderrors "errors"
	"github.com/bytedance/sonic"

	"github.com/yanun0323/errors"

	"main/pkg/conn"
)

var ErrBadConfig = stderrors.New("bad config")

const (
	defaultDataDir = "data"
	defaultSteps   = 1000
	defaultSeed    = 1
)

// FileConfig mirrors the JSON config layout. Zero values resolve to
// defaults at load time.
type FileConfig struct {
	Data     DataConfig     `json:"data"`
	Postgres PostgresConfig `json:"postgres"`
	Profiler ProfilerConfig `json:"profiler"`
}

// DataConfig locates the feed files and controls generation.
type DataConfig struct {
	Dir   string `json:"dir"`
	Steps int    `json:"steps"`
	Seed  int64  `json:"seed"`
}

// PostgresConfig switches the optional database archive on.
type PostgresConfig struct {
	Enabled bool `json:"enabled"`
	conn.Postgres
}

// ProfilerConfig switches the optional continuous profiler on.
type ProfilerConfig struct {
	Enabled       bool   `json:"enabled"`
	ServerAddress string `json:"server_address"`
	AppName       string `json:"app_name"`
}

// FeedPaths are the four replayed input files.
type FeedPaths struct {
	Prices    string
	Depth     string
	Trades    string
	Inquiries string
}

// OutPaths are the archive and display outputs.
type OutPaths struct {
	GUI        string
	Positions  string
	Risk       string
	Executions string
	Streaming  string
	Inquiries  string
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	DataDir  string
	Feeds    FeedPaths
	Out      OutPaths
	Steps    int
	Seed     int64
	Postgres *conn.Postgres
	Profiler ProfilerConfig
}

// WithDataDir rebases every feed and output path onto dir.
func (l Loaded) WithDataDir(dir string) Loaded {
	rebased := FileConfig{
		Data:     DataConfig{Dir: dir, Steps: l.Steps, Seed: l.Seed},
		Profiler: l.Profiler,
	}
	out, _ := rebased.resolve()
	out.Postgres = l.Postgres
	return out
}

// Load reads a JSON config file and resolves defaults. An empty path
// yields the all-defaults configuration.
func Load(path string) (Loaded, error) {
	var cfg FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "read config")
		}
		if err := sonic.Unmarshal(data, &cfg); err != nil {
			return Loaded{}, errors.Wrap(err, "decode config")
		}
	}
	return cfg.resolve()
}

func (cfg FileConfig) resolve() (Loaded, error) {
	dir := cfg.Data.Dir
	if dir == "" {
		dir = defaultDataDir
	}
	steps := cfg.Data.Steps
	if steps == 0 {
		steps = defaultSteps
	}
	if steps < 0 {
		return Loaded{}, errors.Wrap(ErrBadConfig, "steps must be positive")
	}
	seed := cfg.Data.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	loaded := Loaded{
		DataDir: dir,
		Feeds: FeedPaths{
			Prices:    filepath.Join(dir, "prices.txt"),
			Depth:     filepath.Join(dir, "marketdata.txt"),
			Trades:    filepath.Join(dir, "trades.txt"),
			Inquiries: filepath.Join(dir, "inquiries.txt"),
		},
		Out: OutPaths{
			GUI:        filepath.Join(dir, "gui.txt"),
			Positions:  filepath.Join(dir, "positions.txt"),
			Risk:       filepath.Join(dir, "risk.txt"),
			Executions: filepath.Join(dir, "executions.txt"),
			Streaming:  filepath.Join(dir, "streaming.txt"),
			Inquiries:  filepath.Join(dir, "allinquiries.txt"),
		},
		Steps:    steps,
		Seed:     seed,
		Profiler: cfg.Profiler,
	}
	if cfg.Postgres.Enabled {
		pg := cfg.Postgres.Postgres
		loaded.Postgres = &pg
	}
	return loaded, nil
}
