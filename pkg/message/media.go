package message

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidSource is returned when a media input is neither a URL, a file
// path, nor an in-memory byte buffer.
var ErrInvalidSource = errors.New("invalid media source: must be a file path, URL, or byte buffer")

// MediaKind declares how a payload should be delivered.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaFile  MediaKind = "file"
)

var (
	reImageExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)
	reVideoExt = regexp.MustCompile(`(?i)\.(mp4|mov|avi|mkv)$`)
	reAudioExt = regexp.MustCompile(`(?i)\.(mp3|ogg|wav|m4a)$`)
)

// MediaSource is a tagged media input, constructed once at the API boundary
// and resolved by a single routine.
type MediaSource interface {
	resolve(ctx context.Context, client *resty.Client) ([]byte, error)
	name() string
}

type urlSource string
type pathSource string
type bytesSource []byte

// URL wraps a remote media address.
func URL(u string) MediaSource { return urlSource(u) }

// Path wraps a local file path.
func Path(p string) MediaSource { return pathSource(p) }

// Bytes wraps an in-memory payload.
func Bytes(b []byte) MediaSource { return bytesSource(b) }

// SourceFrom classifies a loosely typed media input. Strings starting with
// http become URL sources, other strings are treated as file paths.
func SourceFrom(v interface{}) (MediaSource, error) {
	switch s := v.(type) {
	case MediaSource:
		return s, nil
	case string:
		if strings.HasPrefix(s, "http") {
			return urlSource(s), nil
		}
		return pathSource(s), nil
	case []byte:
		return bytesSource(s), nil
	default:
		return nil, ErrInvalidSource
	}
}

func (s urlSource) resolve(ctx context.Context, client *resty.Client) ([]byte, error) {
	resp, err := client.R().SetContext(ctx).Get(string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch media: HTTP %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func (s urlSource) name() string { return lastSegment(string(s)) }

func (s pathSource) resolve(_ context.Context, _ *resty.Client) ([]byte, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s pathSource) name() string { return lastSegment(string(s)) }

func (s bytesSource) resolve(_ context.Context, _ *resty.Client) ([]byte, error) {
	return []byte(s), nil
}

func (s bytesSource) name() string { return "file" }

// Resolver turns media sources into raw bytes.
type Resolver struct {
	client *resty.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

func (r *Resolver) Resolve(ctx context.Context, src MediaSource) ([]byte, error) {
	if src == nil {
		return nil, ErrInvalidSource
	}
	return src.resolve(ctx, r.client)
}

// inferKind guesses a media kind from a URL or path extension. Anything
// unrecognized is delivered as a document.
func inferKind(source string) MediaKind {
	switch {
	case reImageExt.MatchString(source):
		return MediaImage
	case reVideoExt.MatchString(source):
		return MediaVideo
	case reAudioExt.MatchString(source):
		return MediaAudio
	default:
		return MediaFile
	}
}

func lastSegment(source string) string {
	source = strings.TrimSuffix(source, "/")
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		source = source[i+1:]
	}
	if source == "" {
		return "file"
	}
	return source
}
