package connector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BaSui01/flownet/block"
)

// HTTPOption configures the HTTP connectors.
type HTTPOption func(*httpOptions)

type httpOptions struct {
	client   *http.Client
	maxPolls int
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(o *httpOptions) {
		if client != nil {
			o.client = client
		}
	}
}

// WithMaxPolls bounds a polling source to n requests; 0 means unbounded
// (a live feed that never exhausts on its own).
func WithMaxPolls(n int) HTTPOption {
	return func(o *httpOptions) { o.maxPolls = n }
}

func applyHTTPOptions(opts []HTTPOption) httpOptions {
	o := httpOptions{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// HTTPPollSource returns a source opener that GETs url once per invocation
// and emits the response body as a string. Pair it with block.WithInterval
// to pace the polling. A non-2xx status is a fault.
func HTTPPollSource(url string, opts ...HTTPOption) block.SourceOpener {
	o := applyHTTPOptions(opts)
	return func() (block.SourceFunc, error) {
		polls := 0
		return func() (any, error) {
			if o.maxPolls > 0 && polls >= o.maxPolls {
				return nil, nil
			}
			polls++
			resp, err := o.client.Get(url)
			if err != nil {
				return nil, fmt.Errorf("poll %s: %w", url, err)
			}
			defer func() { _ = resp.Body.Close() }()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("poll %s: read body: %w", url, err)
			}
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, fmt.Errorf("poll %s: status %d", url, resp.StatusCode)
			}
			return string(body), nil
		}, nil
	}
}

// WebhookSink returns a sink that POSTs each message to url as JSON. A
// non-2xx response is a fault.
func WebhookSink(url string, opts ...HTTPOption) block.SinkFunc {
	o := applyHTTPOptions(opts)
	return func(msg any) error {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("webhook %s: marshal: %w", url, err)
		}
		resp, err := o.client.Post(url, "application/json", bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("webhook %s: %w", url, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("webhook %s: status %d", url, resp.StatusCode)
		}
		return nil
	}
}
