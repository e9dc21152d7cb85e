// config/teams.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VolunteerTeam is one entry in the volunteer team directory the bot offers
// to people asking for help.
type VolunteerTeam struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
	Info  string `yaml:"info" json:"info"`
}

type teamsFile struct {
	Teams []VolunteerTeam `yaml:"teams"`
}

// LoadTeams reads the volunteer team directory from a YAML file. A missing
// file yields an empty directory rather than an error so the service can
// run before the directory is provisioned.
func LoadTeams(path string) ([]VolunteerTeam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read teams file: %w", err)
	}

	var f teamsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse teams file: %w", err)
	}
	return f.Teams, nil
}
