// Package files stores equations as plain YAML documents under a
// project-local .eqtint directory. It supplies the initial
// (markup, colors) pair when an equation is opened for editing and
// receives the committed pair on save; nothing else persists.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eqtint/eqtint-cli/pkg/models"
)

const (
	EqtintDir    = ".eqtint"
	EquationsDir = "equations"
	SettingsFile = "settings.yaml"
)

func InitProjectStructure() error {
	dirs := []string{
		EqtintDir,
		filepath.Join(EqtintDir, EquationsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds an eqtint
// project.
func ProjectExists() bool {
	info, err := os.Stat(EqtintDir)
	return err == nil && info.IsDir()
}

func equationPath(name string) string {
	return filepath.Join(EqtintDir, EquationsDir, name+".yaml")
}

func ReadEquation(name string) (*models.Equation, error) {
	path := equationPath(name)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read equation %s: %w", name, err)
	}

	var eq models.Equation
	if err := yaml.Unmarshal(content, &eq); err != nil {
		return nil, fmt.Errorf("failed to parse equation YAML %s: %w", name, err)
	}

	if eq.Name == "" {
		eq.Name = name
	}
	if eq.Colors == nil {
		eq.Colors = map[string]string{}
	}
	eq.Path = path

	return &eq, nil
}

func WriteEquation(eq *models.Equation) error {
	if eq.Name == "" {
		return fmt.Errorf("equation has no name")
	}

	path := equationPath(eq.Name)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create equations directory: %w", err)
	}

	content, err := yaml.Marshal(eq)
	if err != nil {
		return fmt.Errorf("failed to marshal equation to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write equation %s: %w", eq.Name, err)
	}

	eq.Path = path
	return nil
}

func DeleteEquation(name string) error {
	if err := os.Remove(equationPath(name)); err != nil {
		return fmt.Errorf("failed to delete equation %s: %w", name, err)
	}
	return nil
}

// ListEquations returns the stored equation names, without extensions.
func ListEquations() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(EqtintDir, EquationsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list equations: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}

	return names, nil
}

// ReadSettings loads project settings, or defaults when no settings
// file exists.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(filepath.Join(EqtintDir, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(EqtintDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
