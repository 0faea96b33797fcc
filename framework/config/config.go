// Package config assembles settings from, in increasing order of
// precedence, built in defaults, a YAML settings file, environment
// variables prefixed ARCHGLOB_ and command line flags.
package config

import (
	"io/ioutil"
	"strings"

	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"golang.org/x/xerrors"
	yaml "gopkg.in/yaml.v2"

	"github.com/retro-framework/go-archglob/framework/nested"
)

const EnvPrefix = "ARCHGLOB"

var ErrInvalidConfig = xerrors.New("config: invalid")

type Config struct {
	Listen string `yaml:"listen"`
	Glob   struct {
		Scheme    string   `yaml:"scheme"`
		Extension string   `yaml:"extension"`
		Excludes  []string `yaml:"excludes"`
	} `yaml:"glob"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	Influx struct {
		Addr     string `yaml:"addr"`
		Database string `yaml:"database"`
	} `yaml:"influx"`
	Elastic struct {
		URL   string `yaml:"url"`
		Index string `yaml:"index"`
	} `yaml:"elastic"`
	Zipkin struct {
		URL string `yaml:"url"`
	} `yaml:"zipkin"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	// Args holds the positional command line arguments.
	Args []string `yaml:"-"`
}

func Default() Config {
	var c Config
	c.Listen = ":8080"
	c.Glob.Scheme = "phar://"
	c.Glob.Extension = ".phar"
	c.Influx.Database = "archglob"
	c.Elastic.Index = "archglob"
	c.Log.Level = "info"
	return c
}

type setting struct {
	flag  string
	key   string
	list  bool
	usage string
}

// settings maps flag names (and with that env var names) to dotted
// keys in the settings tree.
var settings = []setting{
	{"listen", "listen", false, "listen address of the server"},
	{"scheme", "glob.scheme", false, "archive scheme prefix patterns must start with"},
	{"extension", "glob.extension", false, "archive file extension"},
	{"exclude", "glob.excludes", true, "comma separated globs to drop from results"},
	{"redis-addr", "redis.addr", false, "redis address for cross request once keys"},
	{"influx-addr", "influx.addr", false, "influxdb http address for glob metrics"},
	{"influx-db", "influx.database", false, "influxdb database"},
	{"elastic-url", "elastic.url", false, "elasticsearch url for the glob audit index"},
	{"elastic-index", "elastic.index", false, "elasticsearch index name"},
	{"zipkin-url", "zipkin.url", false, "zipkin collector url"},
	{"log-level", "log.level", false, "debug, info, warn or error"},
}

// Flags is a FlagSet with every setting registered, callers may add
// their own flags before calling Parse.
type Flags struct {
	*flag.FlagSet
	settingsFile *string
	values       map[string]*string
}

func NewFlags(name string) *Flags {
	var f = &Flags{
		FlagSet: flag.NewFlagSetWithEnvPrefix(name, EnvPrefix, flag.ContinueOnError),
		values:  map[string]*string{},
	}
	f.settingsFile = f.String("settings", "", "YAML settings file")
	for _, s := range settings {
		f.values[s.flag] = f.String(s.flag, "", s.usage)
	}
	return f
}

// Parse parses args and returns the assembled, validated config.
func (f *Flags) Parse(args []string) (Config, error) {
	if err := f.FlagSet.Parse(args); err != nil {
		return Config{}, err
	}

	var tree = nested.Tree{}
	if *f.settingsFile != "" {
		b, err := ioutil.ReadFile(*f.settingsFile)
		if err != nil {
			return Config{}, errors.Wrap(err, "can't read settings file")
		}
		if tree, err = nested.FromYAML(b); err != nil {
			return Config{}, err
		}
	}

	var overrides = map[string]bool{}
	f.Visit(func(fl *flag.Flag) { overrides[fl.Name] = true })

	for _, s := range settings {
		if !overrides[s.flag] {
			continue
		}
		var value interface{} = *f.values[s.flag]
		if s.list {
			value = splitList(*f.values[s.flag])
		}
		if err := nested.Set(tree, s.key, value); err != nil {
			return Config{}, errors.Wrapf(err, "can't apply -%s", s.flag)
		}
	}

	cfg, err := FromTree(tree)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = f.Args()
	return cfg, cfg.Validate()
}

func splitList(s string) []interface{} {
	var out = []interface{}{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FromTree decodes a settings tree over the defaults.
func FromTree(tree nested.Tree) (Config, error) {
	var cfg = Default()
	b, err := nested.ToYAML(tree)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "can't decode settings")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Glob.Scheme == "" {
		return errors.Wrap(ErrInvalidConfig, "glob.scheme may not be empty")
	}
	if !strings.HasSuffix(c.Glob.Scheme, "://") {
		return errors.Wrapf(ErrInvalidConfig, "glob.scheme %q must end in ://", c.Glob.Scheme)
	}
	if c.Glob.Extension == "" || !strings.HasPrefix(c.Glob.Extension, ".") {
		return errors.Wrapf(ErrInvalidConfig, "glob.extension %q must start with a dot", c.Glob.Extension)
	}
	if c.Influx.Addr != "" && c.Influx.Database == "" {
		return errors.Wrap(ErrInvalidConfig, "influx.database is required with influx.addr")
	}
	if c.Elastic.URL != "" && c.Elastic.Index == "" {
		return errors.Wrap(ErrInvalidConfig, "elastic.index is required with elastic.url")
	}
	return nil
}
