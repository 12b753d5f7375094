package core

import (
	"encoding/json"
	"os"

	"github.com/jcelliott/lumber"
	"github.com/thoas/go-funk"
)

type jsonData struct {
	Development   bool
	AuthToken     string
	CommandPrefix string
	Database      string
	OwnerIds      []string
}

type SettingsStorage struct {
	data jsonData
}

var Settings = SettingsStorage{jsonData{}}

// Load the settings from a json file and stuff it into a new SettingsStorage object.
// DISCORD_TOKEN from the environment (or a .env file loaded by main) wins over the
// token in the file, so the file can be committed without credentials.
func LoadSettings(settingsfile string) {
	file, err := os.Open(settingsfile)
	if err != nil {
		LogFatal("Failed to open config file: ", err)
	}
	defer file.Close()
	decoder := json.NewDecoder(file)
	err = decoder.Decode(&Settings.data)
	if err != nil {
		LogFatal("Failed to parse configuration: ", err)
	}
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		Settings.data.AuthToken = token
	}
	if Settings.data.CommandPrefix == "" {
		LogFatal("No CommandPrefix configured in ", settingsfile)
	}
	if !Settings.IsDevelopment() {
		SetLogLevel(lumber.INFO)
	} else {
		LogDebug("Loaded config successfully from ", settingsfile)
	}
}

// Get the bot auth token
func (s *SettingsStorage) AuthToken() string {
	return s.data.AuthToken
}

// Get the prefix used for bot commands
func (s *SettingsStorage) CommandPrefix() string {
	return s.data.CommandPrefix
}

// Get whether or not we're running in Development mode.
func (s *SettingsStorage) IsDevelopment() bool {
	return s.data.Development
}

// Path the sqlite database is stored at
func (s *SettingsStorage) Database() string {
	return s.data.Database
}

// IsOwner reports whether the given user id is one of the configured bot owners.
func (s *SettingsStorage) IsOwner(userID string) bool {
	return funk.ContainsString(s.data.OwnerIds, userID)
}
