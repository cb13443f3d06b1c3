package client

import (
	"context"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// InboundClient manages v1 inbound campaigns. Every method requires API v1;
// under v2 use the equivalent PearlClient method.
type InboundClient struct {
	c *Client
}

// GetAll lists all inbound campaigns.
func (ic *InboundClient) GetAll(ctx context.Context) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundGetAll)
	if err != nil {
		return nil, err
	}
	return k.send(ctx, nil)
}

// Get returns an inbound campaign by ID.
func (ic *InboundClient) Get(ctx context.Context, inboundID string) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundGet)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.InboundGet, "inboundID", inboundID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, inboundID)
}

// SetActive activates or deactivates an inbound campaign.
func (ic *InboundClient) SetActive(ctx context.Context, inboundID string, active bool) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundSetActive)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.InboundSetActive, "inboundID", inboundID); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"isActive": active}, inboundID)
}

// GetCalls searches the calls an inbound campaign received between from and to.
// Accepts WithSkip, WithLimit, WithSortProp, WithAscending, WithTags,
// WithStatuses and WithSearchInput.
func (ic *InboundClient) GetCalls(ctx context.Context, inboundID string, from, to nlpearl.Date, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundGetCalls)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.InboundGetCalls, "inboundID", inboundID); err != nil {
		return nil, err
	}
	if err := haveDates(endpoint.InboundGetCalls, from, to); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := datedPage(o, from, to)
	callFilters{statuses: true, search: true}.apply(body, o)
	return k.send(ctx, body, inboundID)
}

// GetOngoingCalls returns the number of calls in progress and in queue.
func (ic *InboundClient) GetOngoingCalls(ctx context.Context, inboundID string) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundGetOngoingCalls)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.InboundGetOngoingCalls, "inboundID", inboundID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, inboundID)
}

// GetAnalytics returns analytics for a range of at most 90 days.
func (ic *InboundClient) GetAnalytics(ctx context.Context, inboundID string, from, to nlpearl.Date) (*nlpearl.Result, error) {
	k, err := ic.c.begin(endpoint.InboundGetAnalytics)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.InboundGetAnalytics, "inboundID", inboundID); err != nil {
		return nil, err
	}
	if err := nlpearl.CheckRange(endpoint.InboundGetAnalytics, from, to); err != nil {
		return nil, err
	}
	return k.send(ctx, analyticsBody(from, to), inboundID)
}
