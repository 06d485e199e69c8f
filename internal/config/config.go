package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths      PathsConfig      `mapstructure:"paths"`
	Codec      CodecConfig      `mapstructure:"codec"`
	Compressor CompressorConfig `mapstructure:"compressor"`
	LogLevel   string           `mapstructure:"log_level"`
}

type PathsConfig struct {
	Dictionary string `mapstructure:"dictionary"`
}

type CodecConfig struct {
	MaxDictEntries int `mapstructure:"max_dict_entries"`
}

type CompressorConfig struct {
	Entropy   string `mapstructure:"entropy"`
	Transform string `mapstructure:"transform"`
	BlockSize int    `mapstructure:"block_size"`
	Jobs      int    `mapstructure:"jobs"`
	Checksum  bool   `mapstructure:"checksum"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Dictionary: "dictionary.txt",
		},
		Codec: CodecConfig{
			MaxDictEntries: 1 << 24,
		},
		Compressor: CompressorConfig{
			Entropy:   "TPAQ",
			Transform: "NONE",
			BlockSize: 4 * 1024 * 1024,
			Jobs:      1,
			Checksum:  false,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-dictionary", defaults.Paths.Dictionary, "Path to word-list dictionary file")
	fs.Int("codec-max-dict-entries", defaults.Codec.MaxDictEntries, "Maximum dictionary lines to load (capped at 2^24)")
	fs.String("compressor-entropy", defaults.Compressor.Entropy, "Entropy codec (NONE|HUFFMAN|ANS0|ANS1|RANGE|FPAQ|CM|TPAQ|TPAQX)")
	fs.String("compressor-transform", defaults.Compressor.Transform, "Byte transform pipeline passed to the block compressor")
	fs.Int("compressor-block-size", defaults.Compressor.BlockSize, "Block size in bytes for the block compressor")
	fs.Int("compressor-jobs", defaults.Compressor.Jobs, "Concurrent compression jobs")
	fs.Bool("compressor-checksum", defaults.Compressor.Checksum, "Embed block checksums in the compressed stream")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("BLACKHOLE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	if err := v.BindEnv("paths.dictionary", "BLACKHOLE_DICT"); err != nil {
		return Config{}, fmt.Errorf("bind dictionary env var: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("blackhole")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.dictionary", c.Paths.Dictionary)
	v.SetDefault("codec.max_dict_entries", c.Codec.MaxDictEntries)
	v.SetDefault("compressor.entropy", c.Compressor.Entropy)
	v.SetDefault("compressor.transform", c.Compressor.Transform)
	v.SetDefault("compressor.block_size", c.Compressor.BlockSize)
	v.SetDefault("compressor.jobs", c.Compressor.Jobs)
	v.SetDefault("compressor.checksum", c.Compressor.Checksum)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.dictionary", "paths-dictionary")
	v.RegisterAlias("codec.max_dict_entries", "codec-max-dict-entries")
	v.RegisterAlias("compressor.entropy", "compressor-entropy")
	v.RegisterAlias("compressor.transform", "compressor-transform")
	v.RegisterAlias("compressor.block_size", "compressor-block-size")
	v.RegisterAlias("compressor.jobs", "compressor-jobs")
	v.RegisterAlias("compressor.checksum", "compressor-checksum")
	v.RegisterAlias("log_level", "log-level")
}
