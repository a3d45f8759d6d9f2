package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"xiangqi/internal/translate"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Translate TranslateConfig `mapstructure:"translate"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TranslateConfig struct {
	StrictModifier  bool `mapstructure:"strict_modifier"`
	StrictGlyphSide bool `mapstructure:"strict_glyph_side"`
	GeneralSafety   bool `mapstructure:"general_safety"`
	CacheSize       int  `mapstructure:"cache_size"`
}

func (c TranslateConfig) Options() translate.Options {
	return translate.Options{
		StrictModifier:  c.StrictModifier,
		StrictGlyphSide: c.StrictGlyphSide,
		GeneralSafety:   c.GeneralSafety,
		CacheSize:       c.CacheSize,
	}
}

// Load 读取配置：默认值 < 配置文件 < XIANGQI_ 前缀的环境变量。
// cfgPath 为空时只用默认值和环境变量。
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("translate.strict_modifier", false)
	v.SetDefault("translate.strict_glyph_side", false)
	v.SetDefault("translate.general_safety", true)
	v.SetDefault("translate.cache_size", 1024)

	v.SetEnvPrefix("XIANGQI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
