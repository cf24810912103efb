package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHighScoreFile = "OMNIRUN_HIGHSCORE_FILE"
	EnvAudio         = "OMNIRUN_AUDIO"
	EnvVolume        = "OMNIRUN_VOLUME"
	EnvSeed          = "OMNIRUN_SEED"
	EnvRosterFile    = "OMNIRUN_ROSTER_FILE"
	EnvScale         = "OMNIRUN_SCALE"
)

// Config is the runtime configuration shared by both shells.
type Config struct {
	HighScoreFile string
	AudioEnabled  bool
	Volume        float64 // 0..1
	Seed          int64   // 0 means seed from the clock
	RosterFile    string  // empty means the embedded roster
	Scale         float64 // window scale factor
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HighScoreFile: defaultHighScoreFile(),
		AudioEnabled:  true,
		Volume:        0.3,
		Scale:         1,
	}
}

// Load reads an optional .env file, then applies OMNIRUN_* variables on top
// of the defaults. Unparseable values are logged and ignored.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: reading .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv(EnvHighScoreFile); v != "" {
		cfg.HighScoreFile = v
	}

	if v := os.Getenv(EnvAudio); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = b
		} else {
			log.Printf("config: %s=%q is not a bool", EnvAudio, v)
		}
	}

	// Volume is given as 0-100.
	if v := os.Getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Volume = min(max(float64(n)/100, 0), 1)
		} else {
			log.Printf("config: %s=%q is not an integer", EnvVolume, v)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			log.Printf("config: %s=%q is not an integer", EnvSeed, v)
		}
	}

	cfg.RosterFile = os.Getenv(EnvRosterFile)

	if v := os.Getenv(EnvScale); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Scale = f
		} else {
			log.Printf("config: %s=%q is not a positive number", EnvScale, v)
		}
	}

	return cfg
}

func defaultHighScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "omnirun-highscore.json"
	}
	return filepath.Join(dir, "omnirun", "highscore.json")
}
