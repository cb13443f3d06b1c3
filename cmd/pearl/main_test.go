package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
	"github.com/spetersoncode/nlpearl/pearltest"
)

const testKey = "cli-key"

func setup(t *testing.T) *pearltest.Server {
	t.Helper()
	for _, key := range []string{"PEARL_API_KEY", "PEARL_API_VERSION", "PEARL_BASE_URL", "PEARL_TIMEOUT", "PEARL_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	srv := pearltest.NewServer(pearltest.WithAPIKey(testKey))
	t.Cleanup(srv.Close)
	return srv
}

// execute runs the CLI against srv and returns its output.
func execute(t *testing.T, srv *pearltest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--api-key", testKey, "--base-url", srv.URL, "--log-level", "error"}, args...))
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAccount(t *testing.T) {
	srv := setup(t)

	out, err := execute(t, srv, "account")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Test Account"`)

	out, err = execute(t, srv, "account", "--field", "creditBalance")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	_, err = execute(t, srv, "account", "--field", "nope")
	assert.Error(t, err)
}

func TestRequests(t *testing.T) {
	srv := setup(t)

	tests := []struct {
		name    string
		args    []string
		op      string
		version nlpearl.Version
		body    map[string]any
	}{
		{
			name:    "add lead v2",
			args:    []string{"lead", "add", "p1", "+15550001111", "--external-id", "ext1"},
			op:      endpoint.OutboundAddLead,
			version: nlpearl.V2,
			body:    map[string]any{"phoneNumber": "+15550001111", "externalId": "ext1"},
		},
		{
			name:    "add lead v1",
			args:    []string{"--api-version", "v1", "lead", "add", "ob1", "+15550001111", "--data", "name=Ada"},
			op:      endpoint.OutboundAddLead,
			version: nlpearl.V1,
			body:    map[string]any{"phoneNumber": "+15550001111", "callData": map[string]any{"name": "Ada"}},
		},
		{
			name:    "update lead",
			args:    []string{"lead", "update", "p1", "l1", "--status", "0"},
			op:      endpoint.OutboundUpdateLead,
			version: nlpearl.V2,
			body:    map[string]any{"status": float64(0)},
		},
		{
			name:    "list leads v2",
			args:    []string{"lead", "list", "p1", "--status", "1,2", "--limit", "5"},
			op:      endpoint.OutboundGetLeads,
			version: nlpearl.V2,
			body: map[string]any{
				"skip": float64(0), "limit": float64(5), "isAscending": true,
				"statuses": []any{float64(1), float64(2)},
			},
		},
		{
			name:    "list leads v1",
			args:    []string{"--api-version", "v1", "lead", "list", "ob1", "--status", "3"},
			op:      endpoint.OutboundGetLeads,
			version: nlpearl.V1,
			body:    map[string]any{"skip": float64(0), "limit": float64(100), "isAscending": true, "status": float64(3)},
		},
		{
			name:    "delete leads by external id",
			args:    []string{"lead", "delete", "p1", "a", "b", "--external"},
			op:      endpoint.OutboundDeleteLeadsByExternalID,
			version: nlpearl.V2,
			body:    map[string]any{"leadExternalIds": []any{"a", "b"}},
		},
		{
			name:    "lead by phone",
			args:    []string{"lead", "get", "p1", "+15550001111", "--phone"},
			op:      endpoint.OutboundGetLeadByPhoneNumber,
			version: nlpearl.V2,
		},
		{
			name:    "pearl calls",
			args:    []string{"pearl", "calls", "p1", "--from", "2024-01-01", "--to", "2024-01-31", "--tag", "vip", "--desc"},
			op:      endpoint.PearlGetCalls,
			version: nlpearl.V2,
			body: map[string]any{
				"skip": float64(0), "limit": float64(100), "isAscending": false,
				"fromDate": "2024-01-01", "toDate": "2024-01-31",
				"tags": []any{"vip"},
			},
		},
		{
			name:    "pearl deactivate",
			args:    []string{"pearl", "activate", "p1", "--off"},
			op:      endpoint.PearlSetActive,
			version: nlpearl.V2,
			body:    map[string]any{"isActive": false},
		},
		{
			name:    "inbound ongoing",
			args:    []string{"--api-version", "v1", "inbound", "ongoing", "in1"},
			op:      endpoint.InboundGetOngoingCalls,
			version: nlpearl.V1,
		},
		{
			name:    "outbound make call",
			args:    []string{"--api-version", "v1", "outbound", "make-call", "ob1", "+15550001111"},
			op:      endpoint.OutboundMakeCall,
			version: nlpearl.V1,
			body:    map[string]any{"to": "+15550001111"},
		},
		{
			name:    "reset memory v1",
			args:    []string{"--api-version", "v1", "pearl", "reset-memory", "p1", "15550001111"},
			op:      endpoint.PearlResetCustomerMemory,
			version: nlpearl.V1,
		},
		{
			name:    "delete calls",
			args:    []string{"call", "delete", "c1", "c2"},
			op:      endpoint.CallDelete,
			version: nlpearl.V2,
			body:    map[string]any{"callIds": []any{"c1", "c2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv.Reset()
			_, err := execute(t, srv, tt.args...)
			require.NoError(t, err)

			req, ok := srv.LastRequest()
			require.True(t, ok)
			assert.Equal(t, tt.op, req.Op)
			assert.Equal(t, tt.version, req.Version)
			assert.Equal(t, tt.body, req.Body)
		})
	}
}

func TestTextResponse(t *testing.T) {
	srv := setup(t)

	out, err := execute(t, srv, "pearl", "reset-memory", "p1", "+15550001111")
	require.NoError(t, err)
	assert.Equal(t, "Memory reset\n", out)
}

func TestErrors(t *testing.T) {
	srv := setup(t)

	t.Run("wrong version", func(t *testing.T) {
		srv.Reset()
		_, err := execute(t, srv, "inbound", "list")
		require.Error(t, err)
		assert.True(t, nlpearl.IsVersionMismatch(err))
		assert.Contains(t, err.Error(), "Pearl.GetAll")
		assert.Empty(t, srv.Requests())
	})

	t.Run("range too long", func(t *testing.T) {
		_, err := execute(t, srv, "pearl", "analytics", "p1", "--from", "2024-01-01", "--to", "2024-12-31")
		assert.True(t, nlpearl.IsInvalidArgument(err))
	})

	t.Run("missing required flag", func(t *testing.T) {
		_, err := execute(t, srv, "pearl", "analytics", "p1")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "from"))
	})

	t.Run("server error", func(t *testing.T) {
		srv.Respond(endpoint.PearlGet, pearltest.Status(http.StatusNotFound))
		_, err := execute(t, srv, "pearl", "get", "p1")
		assert.Equal(t, http.StatusNotFound, nlpearl.StatusCodeOf(err))
	})

	t.Run("missing api key", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs([]string{"--base-url", srv.URL, "account"})
		cmd.SetErr(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PEARL_API_KEY")
	})
}
