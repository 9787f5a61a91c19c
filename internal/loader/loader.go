// Package loader resolves sample sources into raw documents. It implements
// the sample.Loader contract with file, fs.FS, and HTTP strategies; HTTP is
// disabled unless explicitly enabled through the options.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/ryn-cx/devious-schema/pkg/sample"
)

// Loader delegates to file, fs.FS, or HTTP strategies depending on the
// source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ sample.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options sample.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a sample from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src sample.Source) (sample.Document, error) {
	if src == nil {
		return sample.Document{}, errors.New("sample loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case sample.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case sample.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case sample.SourceKindURL:
		if !l.allowHTTP {
			return sample.Document{}, errors.New("sample loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("sample loader: unsupported source kind")
	}
	if err != nil {
		return sample.Document{}, err
	}

	return sample.NewDocument(src, data)
}
