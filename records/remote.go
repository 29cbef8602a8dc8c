package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fereidani/httpdecompressor"
	"github.com/havoc-io/ordered-iter/assert"
	"github.com/havoc-io/ordered-iter/closer"
	errs "github.com/havoc-io/ordered-iter/errors"
)

// acceptEncoding is sent with every remote request. Setting it ourselves
// stops net/http from decoding gzip behind our back, so every encoding takes
// the same path.
const acceptEncoding = "gzip, deflate, br, zstd"

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// decodingTransport hands back response bodies already decoded as their
// Content-Encoding header says.
type decodingTransport struct {
	next http.RoundTripper
}

var _ http.RoundTripper = decodingTransport{}

func newDecodingTransport(next http.RoundTripper) decodingTransport {
	assert.NotNil(next, "records: decoding transport needs a round tripper")

	return decodingTransport{next: next}
}

func (t decodingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rsp, err := t.next.RoundTrip(req)
	if err != nil {
		return rsp, err
	}

	wire := rsp.Body

	decoded, err := httpdecompressor.Reader(rsp)
	if err != nil {
		return nil, errors.Join(err, wire.Close())
	}

	if decoded != wire {
		rsp.Body = closer.ReadCloser(decoded, closer.NewCloser(decoded, wire))
		rsp.ContentLength = -1
		rsp.Header.Del("Content-Encoding")
	}

	return rsp, nil
}

// fetch opens a remote location. The path part of the URL, stripped of any
// query, is returned for format and compression detection.
func fetch(ctx context.Context, location string, transport http.RoundTripper) (io.ReadCloser, string, error) {
	parsed, err := url.Parse(location)
	if err != nil {
		return nil, "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", err
	}

	request.Header.Set("Accept-Encoding", acceptEncoding)

	client := &http.Client{Transport: newDecodingTransport(transport)}

	rsp, err := client.Do(request)
	if err != nil {
		return nil, "", err
	}

	if rsp.StatusCode != http.StatusOK {
		_ = rsp.Body.Close()

		return nil, "", fmt.Errorf("%w: %s answered %s", errs.ErrRemoteStatus, location, rsp.Status)
	}

	return rsp.Body, parsed.Path, nil
}
