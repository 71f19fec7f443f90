package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/errors"
)

// Overrides is a user-supplied recoloring of the block table, loaded from a
// YAML file of the form:
//
//	colors:
//	  oak_planks: 19
//	  my_modded_block: 288
//
// Names not present in the built-in table are accepted as-is so packs can
// target modded or future blocks; negative color codes are rejected.
type Overrides struct {
	Colors map[string]brick.ColorID `yaml:"colors"`
}

// LoadOverrides reads and validates an override file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "palette file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "read palette file %s", path)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "parse palette file %s", path)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Overrides) validate() error {
	for name, color := range o.Colors {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidPalette, "empty block name in palette overrides")
		}
		if color < 0 {
			return errors.New(errors.ErrCodeInvalidPalette, "invalid color %d for block %q", color, name)
		}
	}
	return nil
}

// Apply returns a copy of t with the overrides layered on top. The
// receiver is not modified; shared built-in maps are copied on write.
func (t *Table) Apply(o *Overrides) *Table {
	if o == nil || len(o.Colors) == 0 {
		return t
	}
	colors := make(map[string]brick.ColorID, len(t.colors)+len(o.Colors))
	for k, v := range t.colors {
		colors[k] = v
	}
	for k, v := range o.Colors {
		colors[k] = v
	}
	return &Table{colors: colors, legacy: t.legacy, wool: t.wool, decor: t.decor}
}

// String summarizes the override set for logs.
func (o *Overrides) String() string {
	return fmt.Sprintf("%d color overrides", len(o.Colors))
}
