package config

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultFileName = "config.toml"

type Keymap struct {
	Quit      string `toml:"quit"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Toggle    string `toml:"toggle"`
	Add       string `toml:"add"`
	EditTitle string `toml:"edit_title"`
	EditDesc  string `toml:"edit_description"`
	Delete    string `toml:"delete"`
}

type Config struct {
	Keys Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		Keys: Keymap{
			Quit:      "q",
			Up:        "k",
			Down:      "j",
			Toggle:    " ",
			Add:       "a",
			EditTitle: "e",
			EditDesc:  "d",
			Delete:    "delete",
		},
	}
}
