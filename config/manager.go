package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "GATEWAY_"
	EnvConfigPath = "GATEWAY_CONFIG_PATH"
)

type WriteCloser interface {
	Write([]byte) (int, error)
	Close() error
}

type WriteCloserProvider interface {
	GetWriter() (WriteCloser, error)
}

// Manager holds the effective configuration: the YAML source overlaid with
// GATEWAY_ environment variables.
type Manager struct {
	KoanProvider   koanf.Provider
	WriterProvider WriteCloserProvider

	mutex         sync.Mutex
	currentConfig Config
}

// LoadFile loads the config at path, or at $GATEWAY_CONFIG_PATH when path is
// empty, falling back to config.yaml.
func LoadFile(path string) (*Manager, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = "config.yaml"
	}
	manager := &Manager{
		KoanProvider:   file.Provider(path),
		WriterProvider: NewFileWriteCloserProvider(path),
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return manager, nil
}

func (m *Manager) Load() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	config, err := readConfig(m.KoanProvider)
	if err != nil {
		return err
	}
	m.currentConfig = config
	return nil
}

func (m *Manager) Write() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	writer, err := m.WriterProvider.GetWriter()
	if err != nil {
		return err
	}
	defer writer.Close()
	return writeConfig(m.currentConfig, writer)
}

func (m *Manager) GetConfig() *Config {
	return &m.currentConfig
}

type FileWriteCloserProvider struct {
	path string
}

func NewFileWriteCloserProvider(path string) *FileWriteCloserProvider {
	return &FileWriteCloserProvider{path: path}
}

func (f *FileWriteCloserProvider) GetWriter() (WriteCloser, error) {
	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file at %s: %w", f.path, err)
	}
	return file, nil
}

func readConfig(provider koanf.Provider) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(provider, yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("error loading config: %w", err)
	}
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading env: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return config, nil
}

func writeConfig(config Config, writer WriteCloser) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(config, "koanf"), nil); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	output, err := k.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}
	if _, err := writer.Write(output); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}
