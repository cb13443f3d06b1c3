package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
	"github.com/spetersoncode/nlpearl/pearltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

// resetGlobals restores the process-wide API key and version after a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	nlpearl.ClearAPIKey()
	nlpearl.SetVersion("")
	t.Cleanup(func() {
		nlpearl.ClearAPIKey()
		nlpearl.SetVersion("")
	})
}

// countingDoer counts the requests that reach the network.
type countingDoer struct {
	n    atomic.Int32
	next HTTPDoer
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	d.n.Add(1)
	return d.next.Do(req)
}

func newTestClient(t *testing.T, srv *pearltest.Server, opts ...Option) (*Client, *countingDoer) {
	t.Helper()
	doer := &countingDoer{next: srv.Client()}
	opts = append([]Option{WithBaseURL(srv.URL), WithHTTPClient(doer)}, opts...)
	return New(Config{}, opts...), doer
}

var (
	day0     = civil.Date{Year: 2024, Month: time.January, Day: 1}
	testFrom = nlpearl.On(day0)
	testTo   = nlpearl.On(day0.AddDays(30))
)

// invocation calls one operation with valid arguments.
type invocation struct {
	op   string
	call func(ctx context.Context, c *Client) (*nlpearl.Result, error)
}

func allInvocations() []invocation {
	return []invocation{
		{endpoint.AccountGet, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Account.Get(ctx) }},

		{endpoint.CallGet, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Call.Get(ctx, "call1") }},
		{endpoint.CallCreate, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Call.Create(ctx, "+15550001111", "+15550002222", 60)
		}},
		{endpoint.CallDelete, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Call.Delete(ctx, []string{"call1"})
		}},

		{endpoint.InboundGetAll, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Inbound.GetAll(ctx) }},
		{endpoint.InboundGet, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Inbound.Get(ctx, "in1") }},
		{endpoint.InboundSetActive, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Inbound.SetActive(ctx, "in1", true)
		}},
		{endpoint.InboundGetCalls, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Inbound.GetCalls(ctx, "in1", testFrom, testTo)
		}},
		{endpoint.InboundGetOngoingCalls, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Inbound.GetOngoingCalls(ctx, "in1")
		}},
		{endpoint.InboundGetAnalytics, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Inbound.GetAnalytics(ctx, "in1", testFrom, testTo)
		}},

		{endpoint.OutboundGetAll, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Outbound.GetAll(ctx) }},
		{endpoint.OutboundGet, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Outbound.Get(ctx, "ob1") }},
		{endpoint.OutboundSetActive, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.SetActive(ctx, "ob1", false)
		}},
		{endpoint.OutboundGetCalls, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetCalls(ctx, "ob1", testFrom, testTo)
		}},
		{endpoint.OutboundGetAnalytics, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetAnalytics(ctx, "ob1", testFrom, testTo)
		}},
		{endpoint.OutboundMakeCall, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.MakeCall(ctx, "ob1", "+15550001111")
		}},
		{endpoint.OutboundGetCallRequest, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetCallRequest(ctx, "req1")
		}},
		{endpoint.OutboundGetCallRequests, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetCallRequests(ctx, "ob1", testFrom, testTo)
		}},
		{endpoint.OutboundAddLead, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.AddLead(ctx, "ob1", "+15550001111")
		}},
		{endpoint.OutboundUpdateLead, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.UpdateLead(ctx, "ob1", "lead1", nlpearl.WithStatus(2))
		}},
		{endpoint.OutboundGetLeads, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetLeads(ctx, "ob1")
		}},
		{endpoint.OutboundGetLeadByID, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetLeadByID(ctx, "ob1", "lead1")
		}},
		{endpoint.OutboundGetLeadByExternalID, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetLeadByExternalID(ctx, "ob1", "ext1")
		}},
		{endpoint.OutboundGetLeadByPhoneNumber, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.GetLeadByPhoneNumber(ctx, "ob1", "+15550001111")
		}},
		{endpoint.OutboundDeleteLeads, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.DeleteLeads(ctx, "ob1", []string{"lead1"})
		}},
		{endpoint.OutboundDeleteLeadsByExternalID, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Outbound.DeleteLeadsByExternalID(ctx, "ob1", []string{"ext1"})
		}},

		{endpoint.PearlResetCustomerMemory, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Pearl.ResetCustomerMemory(ctx, "p1", "15550001111")
		}},
		{endpoint.PearlGetAll, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Pearl.GetAll(ctx) }},
		{endpoint.PearlGet, func(ctx context.Context, c *Client) (*nlpearl.Result, error) { return c.Pearl.Get(ctx, "p1") }},
		{endpoint.PearlSetActive, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Pearl.SetActive(ctx, "p1", true)
		}},
		{endpoint.PearlGetCalls, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Pearl.GetCalls(ctx, "p1", testFrom, testTo)
		}},
		{endpoint.PearlGetOngoingCalls, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Pearl.GetOngoingCalls(ctx, "p1")
		}},
		{endpoint.PearlGetAnalytics, func(ctx context.Context, c *Client) (*nlpearl.Result, error) {
			return c.Pearl.GetAnalytics(ctx, "p1", testFrom, testTo)
		}},
	}
}

func TestInvocationsCoverEveryOperation(t *testing.T) {
	seen := map[string]bool{}
	for _, inv := range allInvocations() {
		seen[inv.op] = true
	}
	for _, op := range endpoint.All() {
		assert.True(t, seen[op.Name], "no invocation for %s", op.Name)
	}
}

func TestMissingAPIKey(t *testing.T) {
	srv := pearltest.NewServer()
	defer srv.Close()

	for _, v := range []nlpearl.Version{nlpearl.V1, nlpearl.V2} {
		for _, inv := range allInvocations() {
			t.Run(string(v)+"/"+inv.op, func(t *testing.T) {
				resetGlobals(t)
				c, doer := newTestClient(t, srv, WithVersion(v))

				res, err := inv.call(context.Background(), c)
				assert.Nil(t, res)

				var cfgErr *nlpearl.ConfigurationError
				require.True(t, errors.As(err, &cfgErr), "got %v", err)
				assert.Equal(t, inv.op, cfgErr.Op)
				assert.ErrorIs(t, err, nlpearl.ErrAPIKeyNotSet)
				assert.Zero(t, doer.n.Load())
			})
		}
	}
}

func TestMissingAPIKeyBeforeArguments(t *testing.T) {
	resetGlobals(t)
	c := New(Config{Version: nlpearl.V2})

	_, err := c.Outbound.DeleteLeads(context.Background(), "", nil)
	assert.True(t, nlpearl.IsConfigurationError(err))

	_, err = c.Inbound.Get(context.Background(), "")
	assert.True(t, nlpearl.IsConfigurationError(err))
}

func TestVersionGuard(t *testing.T) {
	srv := pearltest.NewServer()
	defer srv.Close()

	for _, inv := range allInvocations() {
		op := endpoint.MustLookup(inv.op)
		if op.Only == "" {
			continue
		}
		wrong := nlpearl.V2
		if op.Only == nlpearl.V2 {
			wrong = nlpearl.V1
		}

		t.Run(inv.op, func(t *testing.T) {
			c, doer := newTestClient(t, srv, WithAPIKey(testKey), WithVersion(wrong))

			_, err := inv.call(context.Background(), c)

			var mismatch *nlpearl.VersionMismatchError
			require.True(t, errors.As(err, &mismatch), "got %v", err)
			assert.Equal(t, inv.op, mismatch.Op)
			assert.Equal(t, op.Only, mismatch.Required)
			assert.Equal(t, wrong, mismatch.Active)
			assert.Zero(t, doer.n.Load())
		})
	}
}

func TestVersionGuardBeforeArguments(t *testing.T) {
	c := New(Config{APIKey: testKey, Version: nlpearl.V2})

	_, err := c.Inbound.Get(context.Background(), "")
	assert.True(t, nlpearl.IsVersionMismatch(err))

	_, err = c.Outbound.MakeCall(context.Background(), "", "")
	assert.True(t, nlpearl.IsVersionMismatch(err))
	assert.Contains(t, err.Error(), "v1")

	c = New(Config{APIKey: testKey, Version: nlpearl.V1})
	_, err = c.Pearl.GetAnalytics(context.Background(), "p1", testFrom, nlpearl.On(day0.AddDays(365)))
	assert.True(t, nlpearl.IsVersionMismatch(err))
}

func TestEveryOperationReachesServer(t *testing.T) {
	srv := pearltest.NewServer(pearltest.WithAPIKey(testKey))
	defer srv.Close()

	for _, v := range []nlpearl.Version{nlpearl.V1, nlpearl.V2, "v3"} {
		for _, inv := range allInvocations() {
			op := endpoint.MustLookup(inv.op)
			if !op.Available(v) {
				continue
			}
			t.Run(string(v)+"/"+inv.op, func(t *testing.T) {
				srv.Reset()
				c, doer := newTestClient(t, srv, WithAPIKey(testKey), WithVersion(v))

				if v == "v3" {
					// The fake server only mounts v1 and v2.
					_, err := inv.call(context.Background(), c)
					assert.Equal(t, http.StatusNotFound, nlpearl.StatusCodeOf(err))
					req, ok := srv.LastRequest()
					require.True(t, ok)
					assert.Contains(t, req.Path, "/v3/")
					return
				}

				res, err := inv.call(context.Background(), c)
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, int32(1), doer.n.Load())

				req, ok := srv.LastRequest()
				require.True(t, ok)
				assert.Equal(t, inv.op, req.Op)
				assert.Equal(t, v, req.Version)
			})
		}
	}
}

func TestGlobalContext(t *testing.T) {
	srv := pearltest.NewServer(pearltest.WithAPIKey("global-key"))
	defer srv.Close()

	t.Run("key and version are read at call time", func(t *testing.T) {
		resetGlobals(t)
		c, _ := newTestClient(t, srv)

		_, err := c.Account.Get(context.Background())
		require.True(t, nlpearl.IsConfigurationError(err))

		nlpearl.SetAPIKey("global-key")
		_, err = c.Account.Get(context.Background())
		require.NoError(t, err)
		req, _ := srv.LastRequest()
		assert.Equal(t, nlpearl.V2, req.Version)

		nlpearl.SetVersion(nlpearl.V1)
		_, err = c.Account.Get(context.Background())
		require.NoError(t, err)
		req, _ = srv.LastRequest()
		assert.Equal(t, nlpearl.V1, req.Version)
		assert.Equal(t, nlpearl.V1, c.Version())
	})

	t.Run("switching version changes availability", func(t *testing.T) {
		resetGlobals(t)
		nlpearl.SetAPIKey("global-key")
		c, _ := newTestClient(t, srv)

		_, err := c.Pearl.GetAll(context.Background())
		require.NoError(t, err)

		nlpearl.SetVersion(nlpearl.V1)
		_, err = c.Pearl.GetAll(context.Background())
		assert.True(t, nlpearl.IsVersionMismatch(err))

		_, err = c.Inbound.GetAll(context.Background())
		assert.NoError(t, err)
	})

	t.Run("config overrides globals", func(t *testing.T) {
		resetGlobals(t)
		nlpearl.SetAPIKey("wrong-key")
		nlpearl.SetVersion(nlpearl.V1)
		c, _ := newTestClient(t, srv, WithAPIKey("global-key"), WithVersion(nlpearl.V2))

		_, err := c.Pearl.GetAll(context.Background())
		require.NoError(t, err)
		req, _ := srv.LastRequest()
		assert.Equal(t, "Bearer global-key", req.Header.Get("Authorization"))
		assert.Equal(t, nlpearl.V2, req.Version)
	})

	t.Run("clearing the key", func(t *testing.T) {
		resetGlobals(t)
		nlpearl.SetAPIKey("global-key")
		nlpearl.ClearAPIKey()
		c, _ := newTestClient(t, srv)

		_, err := c.Account.Get(context.Background())
		assert.True(t, nlpearl.IsConfigurationError(err))
	})
}

func TestBaseURL(t *testing.T) {
	resetGlobals(t)

	c := New(Config{})
	assert.Equal(t, "https://api.nlpearl.ai/v2", c.BaseURL())

	nlpearl.SetVersion(nlpearl.V1)
	assert.Equal(t, "https://api.nlpearl.ai/v1", c.BaseURL())

	c = New(Config{BaseURL: "http://localhost:8080/", Version: "v3"})
	assert.Equal(t, "http://localhost:8080/v3", c.BaseURL())
}

func TestServerErrors(t *testing.T) {
	srv := pearltest.NewServer(pearltest.WithAPIKey(testKey))
	defer srv.Close()

	t.Run("unauthorized", func(t *testing.T) {
		c, _ := newTestClient(t, srv, WithAPIKey("bad-key"))
		_, err := c.Account.Get(context.Background())

		var te *nlpearl.TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, http.StatusUnauthorized, te.Code)
		assert.Equal(t, nlpearl.ErrorPermanent, te.Category())
	})

	t.Run("rate limited", func(t *testing.T) {
		srv.Reset()
		srv.Respond(endpoint.PearlGet, pearltest.Status(http.StatusTooManyRequests))
		c, doer := newTestClient(t, srv, WithAPIKey(testKey))

		_, err := c.Pearl.Get(context.Background(), "p1")
		assert.True(t, nlpearl.IsTransient(err))
		assert.Equal(t, int32(1), doer.n.Load(), "no retries")
	})

	t.Run("text body where JSON is required", func(t *testing.T) {
		srv.Reset()
		srv.Respond(endpoint.PearlGet, pearltest.Text("ok"))
		c, _ := newTestClient(t, srv, WithAPIKey(testKey))

		_, err := c.Pearl.Get(context.Background(), "p1")
		assert.True(t, nlpearl.IsDecodeError(err))
	})
}

func TestEvents(t *testing.T) {
	srv := pearltest.NewServer(pearltest.WithAPIKey(testKey))
	defer srv.Close()

	events := make(chan Event, 10)
	c := New(Config{
		APIKey:     testKey,
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Events:     events,
	})

	_, err := c.Account.Get(context.Background())
	require.NoError(t, err)

	start := <-events
	assert.Equal(t, EventRequestStart, start.Type)
	assert.Equal(t, endpoint.AccountGet, start.Operation)
	assert.Equal(t, nlpearl.V2, start.Version)
	assert.False(t, start.Timestamp.IsZero())

	done := <-events
	assert.Equal(t, EventRequestComplete, done.Type)
	assert.Equal(t, http.StatusOK, done.StatusCode)

	srv.Respond(endpoint.AccountGet, pearltest.Status(http.StatusInternalServerError))
	_, err = c.Account.Get(context.Background())
	require.Error(t, err)

	<-events
	failed := <-events
	assert.Equal(t, EventRequestError, failed.Type)
	assert.Equal(t, err, failed.Error)

	// Checks that fail before dispatch emit nothing.
	_, err = c.Inbound.GetAll(context.Background())
	require.Error(t, err)
	assert.Empty(t, events)
}

func TestEmitDoesNotBlock(t *testing.T) {
	ch := make(chan Event)
	emit(ch, Event{Type: EventRequestStart})
	emit(nil, Event{Type: EventRequestStart})
}
