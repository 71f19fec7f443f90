package convert

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brickforge/brickforge/pkg/errors"
)

// ScaleMode selects the voxel-to-brick size regime for a whole run.
type ScaleMode string

const (
	// ScaleStandard maps each voxel to a 1-stud-wide, 1-brick-tall cell.
	ScaleStandard ScaleMode = "standard"

	// ScaleDouble maps each voxel to a 2-stud-wide, 2-brick-tall cell,
	// which unlocks the richer stair and slab geometry.
	ScaleDouble ScaleMode = "double"
)

// DefaultScale is the scale mode used when none is requested.
const DefaultScale = ScaleStandard

// ValidScales is the set of supported scale modes.
var ValidScales = map[ScaleMode]bool{
	ScaleStandard: true,
	ScaleDouble:   true,
}

// Factor returns the multiplier the mode applies to both stud and
// brick-height units.
func (m ScaleMode) Factor() int {
	if m == ScaleDouble {
		return 2
	}
	return 1
}

// Options configures a conversion run. The zero value plus
// ValidateAndSetDefaults is a usable standard-scale run.
type Options struct {
	// Scale selects the size regime; it applies uniformly to the whole run.
	Scale ScaleMode

	// Optimize enables the greedy merge pass over cube primitives.
	Optimize bool

	// Workers bounds the number of concurrent classification goroutines.
	// Zero means one per CPU. Classification is per-layer parallel; the
	// merge pass always runs as a single deterministic pass afterward.
	Workers int

	// Logger receives per-run progress and the aggregated warning report.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Scale == "" {
		o.Scale = DefaultScale
	}
	if !ValidScales[o.Scale] {
		return errors.New(errors.ErrCodeInvalidScale,
			"invalid scale %q (must be one of: standard, double)", o.Scale)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains conversion run statistics.
type Stats struct {
	// Voxels is the number of occupied input cells.
	Voxels int

	// Primitives is the number of bricks handed to the sink.
	Primitives int

	// Merged is the number of cube primitives consumed by the merge pass.
	Merged int

	// UnknownBlocks counts cells whose identifier had no table entry and
	// fell back to a neutral cube.
	UnknownBlocks int

	// MalformedBlocks counts cells recovered with a default property, such
	// as stairs missing their facing.
	MalformedBlocks int

	ClassifyTime time.Duration
	OptimizeTime time.Duration
	EmitTime     time.Duration
}

// Result contains the outputs of a conversion run.
type Result struct {
	// Stats contains counts and timings.
	Stats Stats

	// UnknownIdentifiers maps each unmapped block identifier to the number
	// of cells that used it, for the end-of-run warning report.
	UnknownIdentifiers map[string]int
}
