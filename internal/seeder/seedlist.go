package seeder

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed video_seeds.yaml
var defaultSeedList []byte

// Entry pairs a track name with the director of its music video.
type Entry struct {
	Track    string `yaml:"track"`
	Director string `yaml:"director"`
}

type seedFile struct {
	Videos []Entry `yaml:"videos"`
}

// LoadEntries reads a seed list from path, or the embedded default list when
// path is empty. Every entry must carry a track name and a director.
func LoadEntries(path string) ([]Entry, error) {
	data := defaultSeedList
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = content
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, entry := range file.Videos {
		if entry.Track == "" {
			return nil, fmt.Errorf("seed entry %d has no track name", i+1)
		}
		if entry.Director == "" {
			return nil, fmt.Errorf("seed entry %d (%s) has no director", i+1, entry.Track)
		}
	}
	return file.Videos, nil
}
