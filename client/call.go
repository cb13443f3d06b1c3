package client

import (
	"context"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// CallClient manages individual calls.
type CallClient struct {
	c *Client
}

// Get returns a call by ID. Decodes into nlpearl.Call.
func (cc *CallClient) Get(ctx context.Context, callID string) (*nlpearl.Result, error) {
	k, err := cc.c.begin(endpoint.CallGet)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.CallGet, "callID", callID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, callID)
}

// Create places a call between two numbers for the given duration in seconds.
func (cc *CallClient) Create(ctx context.Context, to, from string, duration int) (*nlpearl.Result, error) {
	k, err := cc.c.begin(endpoint.CallCreate)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.CallCreate, "to", to, "from", from); err != nil {
		return nil, err
	}
	if duration < 0 {
		return nil, &nlpearl.InvalidArgumentError{Op: endpoint.CallCreate, Arg: "duration", Reason: "must not be negative"}
	}
	return k.send(ctx, map[string]any{
		"to":       to,
		"from":     from,
		"duration": duration,
	})
}

// Delete removes one or more calls by ID.
func (cc *CallClient) Delete(ctx context.Context, callIDs []string) (*nlpearl.Result, error) {
	k, err := cc.c.begin(endpoint.CallDelete)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyList(endpoint.CallDelete, "callIDs", callIDs); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"callIds": callIDs})
}
