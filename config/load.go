package config

import (
	"flag"
	"io/ioutil"
	"log"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/plotstream/plotstream/loader"
)

var configPath string

func init() {
	configFolder := getOrCreateConfigFolder()
	defaultConfigPath := path.Join(configFolder, "config.yaml")
	flag.StringVar(&configPath, "config", defaultConfigPath, "specify config file")
}

func getOrCreateConfigFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Println("could not find home folder")
		return ""
	}
	configFolder := path.Join(home, ".plotstream")
	if err := os.MkdirAll(configFolder, 0700); err != nil {
		log.Println("Could not create", configFolder)
		return ""
	}
	return configFolder
}

func Path() string {
	return configPath
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(configPath)
}

func LoadConfigFile(filePath string) (*Config, error) {
	c := &Config{}
	// Pre-set before unmarshal: an omitted animationMs keeps the default,
	// an explicit zero disables the delay.
	c.Progressive.AnimationMS = int(loader.DefaultAnimationDuration / time.Millisecond)
	var data []byte
	var err error
	log.Println("Loading config", filePath)
	if data, err = ioutil.ReadFile(filePath); err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "light"
	}
	if c.ServerAddress == "" {
		c.ServerAddress = ":8080"
	}
	if c.Progressive.ChunkSize <= 0 {
		c.Progressive.ChunkSize = loader.DefaultChunkSize
	}
	if c.Progressive.AnimationMS < 0 {
		c.Progressive.AnimationMS = 0
	}
	if c.Highlight.HighlightScale <= 0 {
		c.Highlight.HighlightScale = 1.4
	}
	if c.Highlight.DimScale <= 0 {
		c.Highlight.DimScale = 0.6
	}
	if c.Highlight.DimOpacity <= 0 {
		c.Highlight.DimOpacity = 0.3
	}
}
