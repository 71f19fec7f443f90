// Package ldraw serializes brick primitives into the LDraw model format.
//
// Each primitive becomes one type-1 subfile reference line:
//
//	1 <color> <x> <y> <z> <3x3 rotation matrix> <part>.dat
//
// The Writer implements the conversion engine's output sink, so it can be
// handed directly to a conversion run.
package ldraw

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/convert"
	"github.com/brickforge/brickforge/pkg/errors"
)

var _ convert.Sink = (*Writer)(nil)

// Writer emits LDraw lines for primitives as they arrive. Create one per
// conversion run; it is not safe for concurrent use.
type Writer struct {
	buf   *bufio.Writer
	scale int
	count int
}

// NewWriter wraps w for the given scale mode. The mode must match the
// conversion run feeding the writer, since single-cell shapes map to
// different parts per scale.
func NewWriter(w io.Writer, mode convert.ScaleMode) *Writer {
	return &Writer{buf: bufio.NewWriter(w), scale: mode.Factor()}
}

// WriteHeader emits the model preamble. Call it once, before the first
// primitive.
func (w *Writer) WriteHeader(name string) error {
	_, err := fmt.Fprintf(w.buf, "0 %s\n0 Name: %s\n0 Author: brickforge\n0 BFC CERTIFY CCW\n", name, name)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write header")
	}
	return nil
}

// Emit writes one primitive as a type-1 line. It satisfies the conversion
// engine's sink contract: called exactly once per final primitive, in
// assembler order.
func (w *Writer) Emit(p brick.Primitive) error {
	part, ok := partFor(p.Shape, w.scale)
	if !ok {
		return errors.New(errors.ErrCodeInternal, "no part for shape %s", p.Shape)
	}

	x, y, z := p.X, p.Y, p.Z
	if p.Shape.Kind == brick.Wide {
		// Merged bricks are positioned at the run's first cell; the part
		// origin is its center, so shift by half the extra extent.
		x += float64(p.Shape.D-w.scale) * (brick.StudLDU / 2)
		z += float64(p.Shape.W-w.scale) * (brick.StudLDU / 2)
	}

	_, err := fmt.Fprintf(w.buf, "1 %d %.2f %.2f %.2f %s %s\n",
		p.Color, x, y, z, rotations[p.Rot], part)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write primitive")
	}
	w.count++
	return nil
}

// Count returns the number of primitives written so far.
func (w *Writer) Count() int { return w.count }

// Close flushes buffered output. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "flush output")
	}
	return nil
}
