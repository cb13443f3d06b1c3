package client

import (
	"context"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// PearlClient manages Pearls, the v2 campaign type that unifies v1 inbound
// and outbound campaigns. Apart from memory reset every method requires API v2.
type PearlClient struct {
	c *Client
}

// ResetCustomerMemory clears what a Pearl remembers about a customer.
// A missing leading "+" is added to phoneNumber. Under v1 the number is
// sent in the path, under v2 in the body. A plain-text success response is
// returned in Result.Text.
func (pc *PearlClient) ResetCustomerMemory(ctx context.Context, pearlID, phoneNumber string) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlResetCustomerMemory)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.PearlResetCustomerMemory, "pearlID", pearlID, "phoneNumber", phoneNumber); err != nil {
		return nil, err
	}
	phone := nlpearl.NormalizePhoneNumber(phoneNumber)
	if k.shape() == nlpearl.V1 {
		return k.send(ctx, nil, pearlID, phone)
	}
	return k.send(ctx, map[string]any{"phoneNumber": phone}, pearlID)
}

// ResetMemory is ResetCustomerMemory under its v2 name.
func (pc *PearlClient) ResetMemory(ctx context.Context, pearlID, phoneNumber string) (*nlpearl.Result, error) {
	return pc.ResetCustomerMemory(ctx, pearlID, phoneNumber)
}

// GetAll lists all Pearls. Requires v2.
func (pc *PearlClient) GetAll(ctx context.Context) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlGetAll)
	if err != nil {
		return nil, err
	}
	return k.send(ctx, nil)
}

// Get returns a Pearl by ID. Requires v2.
func (pc *PearlClient) Get(ctx context.Context, pearlID string) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlGet)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.PearlGet, "pearlID", pearlID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, pearlID)
}

// SetActive activates or deactivates a Pearl. The response is its new
// activity status. Requires v2.
func (pc *PearlClient) SetActive(ctx context.Context, pearlID string, active bool) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlSetActive)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.PearlSetActive, "pearlID", pearlID); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"isActive": active}, pearlID)
}

// GetCalls searches the calls of a Pearl between from and to.
// Accepts WithSkip, WithLimit, WithSortProp, WithAscending, WithTags,
// WithStatuses and WithSearchInput. Requires v2.
func (pc *PearlClient) GetCalls(ctx context.Context, pearlID string, from, to nlpearl.Date, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlGetCalls)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.PearlGetCalls, "pearlID", pearlID); err != nil {
		return nil, err
	}
	if err := haveDates(endpoint.PearlGetCalls, from, to); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := datedPage(o, from, to)
	callFilters{statuses: true, search: true}.apply(body, o)
	return k.send(ctx, body, pearlID)
}

// GetOngoingCalls returns the calls in progress and, for Pearls with inbound
// configurations, the calls in queue. Requires v2.
func (pc *PearlClient) GetOngoingCalls(ctx context.Context, pearlID string) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlGetOngoingCalls)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.PearlGetOngoingCalls, "pearlID", pearlID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, pearlID)
}

// GetAnalytics returns analytics for a range of at most 90 days. Requires v2.
func (pc *PearlClient) GetAnalytics(ctx context.Context, pearlID string, from, to nlpearl.Date) (*nlpearl.Result, error) {
	k, err := pc.c.begin(endpoint.PearlGetAnalytics)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.PearlGetAnalytics, "pearlID", pearlID); err != nil {
		return nil, err
	}
	if err := nlpearl.CheckRange(endpoint.PearlGetAnalytics, from, to); err != nil {
		return nil, err
	}
	return k.send(ctx, analyticsBody(from, to), pearlID)
}
