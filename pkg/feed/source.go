package feed

import (
	"errors"
	"os"

	"github.com/railboard/railboard/pkg/util"
	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "https://gtfsapi.metrarail.com/gtfs"

// Source describes where the static schedule feed lives and where its
// archive is cached locally. Credentials live here explicitly instead of
// in package globals so a Fetcher is a pure function of its Source.
type Source struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	CacheDirectory string `yaml:"cache_directory"`
}

// LoadSource reads an optional YAML source file and then applies
// environment variable overrides on top. An empty path means environment
// only.
func LoadSource(path string) (*Source, error) {
	source := &Source{
		BaseURL:        defaultBaseURL,
		CacheDirectory: "data",
	}

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(contents, source); err != nil {
			return nil, err
		}
	}

	env := util.GetEnvironmentVariables()

	if env["RAILBOARD_FEED_URL"] != "" {
		source.BaseURL = env["RAILBOARD_FEED_URL"]
	}
	if env["RAILBOARD_FEED_USERNAME"] != "" {
		source.Username = env["RAILBOARD_FEED_USERNAME"]
	}
	if env["RAILBOARD_FEED_PASSWORD"] != "" {
		source.Password = env["RAILBOARD_FEED_PASSWORD"]
	}
	if env["RAILBOARD_FEED_CACHE"] != "" {
		source.CacheDirectory = env["RAILBOARD_FEED_CACHE"]
	}

	if source.BaseURL == "" {
		return nil, errors.New("feed source has no base url")
	}

	return source, nil
}
