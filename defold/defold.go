// Package defold emits the text file formats of the Defold engine:
// model, game object (prefab), collection, convex shape and collision
// object. Field layout follows what the engine's own editor writes.
package defold

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

type emitter struct {
	w *bufio.Writer
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: bufio.NewWriter(w)}
}

func (e *emitter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) print(s string) {
	e.w.WriteString(s)
}

func (e *emitter) flush() error {
	return e.w.Flush()
}

// formatFloat prints the shortest decimal that round-trips a float32,
// for fields where fixed precision would lose geometry detail.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
