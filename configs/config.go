package configs

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	configFileName   = `npmtutor.yaml`
	defaultWorkspace = `npmtutor_workspace`
)

var (
	errConfigPathNotExist = errors.New("config path not exist")
	errConfigPathIsFile   = errors.New("config path is file")
)

// Config stores npmtutor config items.
type Config struct {
	// configuration folder path, default $HOME/.npmtutor
	ConfigPath string `yaml:"-"`
	// workspace path for history and progress logs
	WorkspacePath string `yaml:"WorkspacePath"`
	// program name literal stripped from answers, default "npm"
	ProgramName string `yaml:"ProgramName"`
	// disable colored verdict output
	DisableColor bool `yaml:"DisableColor"`
	// shuffle task order within a lesson
	ShuffleTasks bool `yaml:"ShuffleTasks"`
}

func (c *Config) load() error {
	err := c.checkConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Open(c.getConfigPath())
	if err != nil {
		return err
	}
	defer f.Close()
	bs, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(bs, c); err != nil {
		return err
	}
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.WorkspacePath == "" {
		c.WorkspacePath = defaultWorkspace
	}
	if c.ProgramName == "" {
		c.ProgramName = "npm"
	}
}

func (c *Config) getConfigPath() string {
	return path.Join(c.ConfigPath, configFileName)
}

// checkConfigPath exists and is a directory.
func (c *Config) checkConfigPath() error {
	info, err := os.Stat(c.ConfigPath)
	if err != nil {
		// not exist, return specified type to handle
		if os.IsNotExist(err) {
			return errConfigPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		fmt.Printf("%s is not a directory\n", c.ConfigPath)
		return errors.Wrapf(errConfigPathIsFile, "(%s)", configFileName)
	}

	return nil
}

func (c *Config) createDefault() error {
	err := os.MkdirAll(c.ConfigPath, os.ModePerm)
	if err != nil {
		return err
	}

	file, err := os.Create(c.getConfigPath())
	if err != nil {
		return err
	}
	defer file.Close()

	c.applyDefaults()

	bs, err := yaml.Marshal(c)
	if err != nil {
		fmt.Println("failed to marshal config", err.Error())
		return err
	}

	file.Write(bs)
	return nil
}

// NewConfig loads config from the provided directory, creating a default one
// on first run. An empty path defaults to $HOME/.npmtutor.
func NewConfig(configPath string) (*Config, error) {
	if configPath == "" {
		home, err := homedir.Dir()
		if err != nil {
			// fall back to defaults so the tutor still runs
			config := &Config{}
			config.applyDefaults()
			return config, errors.Wrap(err, "failed to resolve home directory")
		}
		configPath = path.Join(home, ".npmtutor")
	}
	config := &Config{
		ConfigPath: configPath,
	}
	err := config.load()
	// config path not exist, may first time to run
	if errors.Is(err, errConfigPathNotExist) {
		return config, config.createDefault()
	}
	if err != nil {
		// broken config file, keep usable defaults
		config.applyDefaults()
	}

	return config, err
}
