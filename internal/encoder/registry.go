package encoder

import (
	"fmt"
	"strings"
)

// priority is the order formats are listed and the fallback order.
var priority = []string{"png", "webp", "avif", "bmp", "tiff", "jpeg"}

// aliases maps file extensions and alternate names to format names.
var aliases = map[string]string{
	"jpg": "jpeg",
	"tif": "tiff",
}

// Registry holds all available encoders keyed by format.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&PNGEncoder{},
		NewWebPEncoder(),
		NewAVIFEncoder(),
		&BMPEncoder{},
		&TIFFEncoder{},
		&JPEGEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Normalize lower-cases a format name and resolves aliases such as "jpg".
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if a, ok := aliases[f]; ok {
		return a
	}
	return f
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[Normalize(format)]
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// Resolve returns the encoder for format. An empty format selects PNG.
// Unknown or unavailable formats are an error listing what is available.
func (r *Registry) Resolve(format string) (Encoder, error) {
	if format == "" {
		format = "png"
	}
	if enc := r.Get(format); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("output format %q unavailable (%s)", format, r)
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
