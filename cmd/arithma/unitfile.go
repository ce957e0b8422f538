package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/arithma"
)

// unitFile is the layout of a file of unit families:
//
//	[[family]]
//	root = "ft"
//	[[family.derived]]
//	id = "yd"
//	worth = 3.0
type unitFile struct {
	Family []unitFamily `toml:"family" yaml:"family"`
}

type unitFamily struct {
	Root    string        `toml:"root" yaml:"root"`
	Derived []derivedUnit `toml:"derived" yaml:"derived"`
}

type derivedUnit struct {
	ID    string  `toml:"id" yaml:"id"`
	Worth float64 `toml:"worth" yaml:"worth"`
}

// loadUnits adds the unit families in the named TOML or YAML file to reg.
func loadUnits(reg *arithma.UnitRegistry, name string) error {
	var uf unitFile
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		md, err := toml.DecodeFile(name, &uf)
		if err != nil {
			return fmt.Errorf("reading units: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return fmt.Errorf("reading units from %s: unknown keys %v", name, keys)
		}
	case ".yaml", ".yml":
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("reading units: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&uf); err != nil {
			return fmt.Errorf("reading units from %s: %w", name, err)
		}
	default:
		return fmt.Errorf("unit file %s must be .toml or .yaml", name)
	}
	return uf.register(reg)
}

// register checks every family before adding any of them to reg.
func (uf *unitFile) register(reg *arithma.UnitRegistry) error {
	for i, fam := range uf.Family {
		if fam.Root == "" {
			return fmt.Errorf("unit family %d has no root", i+1)
		}
		for _, d := range fam.Derived {
			if d.ID == "" {
				return fmt.Errorf("unit family %s has a derived unit with no id", fam.Root)
			}
			if !(d.Worth > 0) || math.IsInf(d.Worth, 0) {
				return fmt.Errorf("unit %s has invalid worth %g", d.ID, d.Worth)
			}
		}
	}
	for _, fam := range uf.Family {
		f := reg.Root(fam.Root)
		for _, d := range fam.Derived {
			f = f.Derive(d.ID, d.Worth)
		}
	}
	return nil
}
