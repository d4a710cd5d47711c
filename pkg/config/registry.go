package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/cab/pkg/database"
	"github.com/travigo/cab/pkg/util"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const DefaultDatabaseIdentifier = "default"

type Database struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	Name       string `yaml:"name" json:"name"`
	Path       string `yaml:"path" json:"-"`
	Timezone   string `yaml:"timezone" json:"timezone,omitempty"`
}

// Location is the zone validity dates are decoded in, time.Local when unset
func (d *Database) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}

	return time.LoadLocation(d.Timezone)
}

func (d *Database) Opener() database.Opener {
	return database.SQLiteOpener(d.Path)
}

type Registry struct {
	Databases []*Database
}

func (r *Registry) Get(identifier string) *Database {
	index := slices.IndexFunc(r.Databases, func(d *Database) bool {
		return d.Identifier == identifier
	})
	if index < 0 {
		return nil
	}

	return r.Databases[index]
}

func (r *Registry) Add(entry *Database) error {
	if entry.Identifier == "" {
		return errors.New("database identifier must be set")
	}
	if r.Get(entry.Identifier) != nil {
		return fmt.Errorf("database %s registered twice", entry.Identifier)
	}
	if entry.Name == "" {
		entry.Name = entry.Identifier
	}

	r.Databases = append(r.Databases, entry)
	return nil
}

// LoadRegistry reads every .yaml file below directory. A file may hold several
// database documents.
func LoadRegistry(directory string) (*Registry, error) {
	registry := &Registry{}

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading database registry file")

			registryYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(registryYaml))

			for {
				var entry Database
				err := decoder.Decode(&entry)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				if !filepath.IsAbs(entry.Path) {
					entry.Path = filepath.Join(filepath.Dir(path), entry.Path)
				}

				if err := registry.Add(&entry); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			return nil
		})
	if err != nil {
		return nil, err
	}

	return registry, nil
}

// RegistryFromEnvironment loads CAB_DATABASES_DIR when set and registers
// CAB_DATABASE (or the default path) as the "default" database.
func RegistryFromEnvironment() (*Registry, error) {
	env := util.GetEnvironmentVariables()

	registry := &Registry{}
	if env["CAB_DATABASES_DIR"] != "" {
		var err error
		registry, err = LoadRegistry(env["CAB_DATABASES_DIR"])
		if err != nil {
			return nil, err
		}
	}

	if registry.Get(DefaultDatabaseIdentifier) == nil {
		err := registry.Add(&Database{
			Identifier: DefaultDatabaseIdentifier,
			Name:       "Default",
			Path:       database.DefaultPath(),
			Timezone:   env["CAB_TIMEZONE"],
		})
		if err != nil {
			return nil, err
		}
	}

	return registry, nil
}
