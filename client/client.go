package client

import (
	"context"
	"net/http"
	"time"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
	"github.com/spetersoncode/nlpearl/internal/transport"
	"go.uber.org/zap"
)

// DefaultTimeout bounds each request when no HTTPClient is configured.
const DefaultTimeout = 30 * time.Second

// HTTPDoer sends an HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration for creating a client.
type Config struct {
	// APIKey authenticates requests. If empty, the process-wide key set with
	// nlpearl.SetAPIKey is read at the start of every call.
	APIKey string

	// Version selects the API generation. If empty, the process-wide version
	// (nlpearl.CurrentVersion) is read at the start of every call.
	Version nlpearl.Version

	// BaseURL is the API root without a version segment.
	// Defaults to nlpearl.DefaultRoot.
	BaseURL string

	// HTTPClient sends requests. Defaults to an *http.Client with Timeout.
	HTTPClient HTTPDoer

	// Timeout applies to the default HTTP client (default: 30s).
	Timeout time.Duration

	// Logger receives debug entries for each request. Defaults to a no-op logger.
	Logger *zap.Logger

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// Option configures a Client.
type Option func(*Config)

// WithAPIKey pins the client to an API key.
func WithAPIKey(key string) Option {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithVersion pins the client to an API version.
func WithVersion(v nlpearl.Version) Option {
	return func(c *Config) {
		c.Version = v
	}
}

// WithBaseURL overrides the API root, e.g. to target a test server.
func WithBaseURL(root string) Option {
	return func(c *Config) {
		c.BaseURL = root
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Config) {
		c.HTTPClient = doer
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Client exposes the NLPearl API grouped by resource.
// It is safe for concurrent use.
type Client struct {
	Account  *AccountClient
	Call     *CallClient
	Inbound  *InboundClient
	Outbound *OutboundClient
	Pearl    *PearlClient

	cfg       Config
	transport *transport.Client
}

// New creates a client with the given configuration.
// A zero Config follows the process-wide API key and version.
func New(cfg Config, opts ...Option) *Client {
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = nlpearl.DefaultRoot
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		cfg:       cfg,
		transport: transport.New(cfg.HTTPClient, cfg.Logger),
	}
	c.Account = &AccountClient{c: c}
	c.Call = &CallClient{c: c}
	c.Inbound = &InboundClient{c: c}
	c.Outbound = &OutboundClient{c: c}
	c.Pearl = &PearlClient{c: c}
	return c
}

// Version returns the API version the next call will use.
func (c *Client) Version() nlpearl.Version {
	if c.cfg.Version != "" {
		return c.cfg.Version
	}
	return nlpearl.CurrentVersion()
}

// BaseURL returns the versioned base URL the next call will use.
func (c *Client) BaseURL() string {
	return nlpearl.BaseURL(c.cfg.BaseURL, c.Version())
}

func (c *Client) apiKey() (string, bool) {
	if c.cfg.APIKey != "" {
		return c.cfg.APIKey, true
	}
	return nlpearl.APIKey()
}

// call is an operation that passed the credential and version checks.
// It carries the key and version read at its start.
type call struct {
	c       *Client
	op      endpoint.Operation
	key     string
	version nlpearl.Version
	route   endpoint.Route
}

// begin runs the checks every operation starts with: the API key first,
// then the version guard.
func (c *Client) begin(name string) (*call, error) {
	op := endpoint.MustLookup(name)
	key, ok := c.apiKey()
	if !ok {
		return nil, &nlpearl.ConfigurationError{Op: name}
	}
	version := c.Version()
	route, err := op.Resolve(version)
	if err != nil {
		return nil, err
	}
	return &call{c: c, op: op, key: key, version: version, route: route}, nil
}

// shape returns the generation whose request shapes apply to this call.
func (k *call) shape() nlpearl.Version {
	return k.version.RequestShape()
}

// send expands the route, dispatches the request and decodes the response.
func (k *call) send(ctx context.Context, body map[string]any, params ...string) (*nlpearl.Result, error) {
	path, err := k.route.Expand(params...)
	if err != nil {
		return nil, err
	}

	emit(k.c.cfg.Events, Event{Type: EventRequestStart, Operation: k.op.Name, Version: k.version})
	start := time.Now()

	res, err := k.c.transport.Do(ctx, transport.Request{
		Op:           k.op.Name,
		Method:       k.route.Method,
		URL:          nlpearl.BaseURL(k.c.cfg.BaseURL, k.version) + path,
		APIKey:       k.key,
		Body:         body,
		TextFallback: k.op.TextFallback,
	})
	if err != nil {
		emit(k.c.cfg.Events, Event{
			Type:      EventRequestError,
			Operation: k.op.Name,
			Version:   k.version,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(k.c.cfg.Events, Event{
		Type:       EventRequestComplete,
		Operation:  k.op.Name,
		Version:    k.version,
		Duration:   time.Since(start),
		StatusCode: res.Status,
	})
	return res, nil
}
