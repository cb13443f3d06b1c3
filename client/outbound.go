package client

import (
	"context"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// OutboundClient manages outbound campaigns and their leads.
//
// Campaign and calling methods require API v1. Lead methods work under both
// versions; their id parameter is an outbound id under v1 and a pearl id under v2.
type OutboundClient struct {
	c *Client
}

// GetAll lists all outbound campaigns. Requires v1.
func (oc *OutboundClient) GetAll(ctx context.Context) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetAll)
	if err != nil {
		return nil, err
	}
	return k.send(ctx, nil)
}

// Get returns an outbound campaign by ID. Requires v1.
func (oc *OutboundClient) Get(ctx context.Context, outboundID string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGet)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGet, "outboundID", outboundID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, outboundID)
}

// SetActive activates or deactivates an outbound campaign. Requires v1.
func (oc *OutboundClient) SetActive(ctx context.Context, outboundID string, active bool) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundSetActive)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundSetActive, "outboundID", outboundID); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"isActive": active}, outboundID)
}

// GetCalls searches the calls of an outbound campaign between from and to.
// Accepts WithSkip, WithLimit, WithSortProp, WithAscending and WithTags. Requires v1.
func (oc *OutboundClient) GetCalls(ctx context.Context, outboundID string, from, to nlpearl.Date, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetCalls)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGetCalls, "outboundID", outboundID); err != nil {
		return nil, err
	}
	if err := haveDates(endpoint.OutboundGetCalls, from, to); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := datedPage(o, from, to)
	callFilters{}.apply(body, o)
	return k.send(ctx, body, outboundID)
}

// GetAnalytics returns analytics for a range of at most 90 days. Requires v1.
func (oc *OutboundClient) GetAnalytics(ctx context.Context, outboundID string, from, to nlpearl.Date) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetAnalytics)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGetAnalytics, "outboundID", outboundID); err != nil {
		return nil, err
	}
	if err := nlpearl.CheckRange(endpoint.OutboundGetAnalytics, from, to); err != nil {
		return nil, err
	}
	return k.send(ctx, analyticsBody(from, to), outboundID)
}

// MakeCall dials a number from an outbound campaign. Accepts WithCallData.
// The response describes a call request; poll it with GetCallRequest. Requires v1.
func (oc *OutboundClient) MakeCall(ctx context.Context, outboundID, to string, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundMakeCall)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundMakeCall, "outboundID", outboundID, "to", to); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := map[string]any{"to": to}
	if o.CallData != nil {
		body["callData"] = o.CallData
	}
	return k.send(ctx, body, outboundID)
}

// GetCallRequest returns a call request by ID. Decodes into nlpearl.CallRequest. Requires v1.
func (oc *OutboundClient) GetCallRequest(ctx context.Context, requestID string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetCallRequest)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGetCallRequest, "requestID", requestID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, requestID)
}

// GetCallRequests searches the call requests of an outbound campaign between from and to.
// Accepts WithSkip, WithLimit, WithSortProp and WithAscending. Requires v1.
func (oc *OutboundClient) GetCallRequests(ctx context.Context, outboundID string, from, to nlpearl.Date, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetCallRequests)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGetCallRequests, "outboundID", outboundID); err != nil {
		return nil, err
	}
	if err := haveDates(endpoint.OutboundGetCallRequests, from, to); err != nil {
		return nil, err
	}
	return k.send(ctx, datedPage(nlpearl.ApplyOptions(opts...), from, to), outboundID)
}

// AddLead adds a lead to a campaign. Accepts WithExternalID, WithTimeZoneID
// and WithCallData. Sent as PUT under v1 and POST under v2.
func (oc *OutboundClient) AddLead(ctx context.Context, id, phoneNumber string, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundAddLead)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundAddLead, "id", id, "phoneNumber", phoneNumber); err != nil {
		return nil, err
	}
	body := map[string]any{"phoneNumber": phoneNumber}
	leadFields(body, nlpearl.ApplyOptions(opts...))
	return k.send(ctx, body, id)
}

// UpdateLead changes the provided attributes of a lead. Accepts
// WithPhoneNumber, WithExternalID, WithTimeZoneID, WithCallData and WithStatus;
// attributes not provided are left unchanged.
func (oc *OutboundClient) UpdateLead(ctx context.Context, id, leadID string, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundUpdateLead)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundUpdateLead, "id", id, "leadID", leadID); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := map[string]any{}
	if o.PhoneNumber != nil {
		body["phoneNumber"] = *o.PhoneNumber
	}
	leadFields(body, o)
	if o.Status != nil {
		body["status"] = *o.Status
	}
	return k.send(ctx, body, id, leadID)
}

// GetLeads searches the leads of a campaign. Accepts WithSkip, WithLimit,
// WithSortProp and WithAscending, plus WithStatus under v1 or WithStatuses
// and WithSearchInput under v2. Filters of the other version are ignored.
func (oc *OutboundClient) GetLeads(ctx context.Context, id string, opts ...nlpearl.Option) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetLeads)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundGetLeads, "id", id); err != nil {
		return nil, err
	}
	o := nlpearl.ApplyOptions(opts...)
	body := page(o)
	if k.shape() == nlpearl.V1 {
		if o.Status != nil {
			body["status"] = *o.Status
		}
	} else {
		if o.Statuses != nil {
			body["statuses"] = o.Statuses
		}
		if o.SearchInput != nil {
			body["searchInput"] = *o.SearchInput
		}
	}
	return k.send(ctx, body, id)
}

// GetLeadByID returns a lead by its ID. Decodes into nlpearl.Lead.
func (oc *OutboundClient) GetLeadByID(ctx context.Context, id, leadID string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetLeadByID)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundGetLeadByID, "id", id, "leadID", leadID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, id, leadID)
}

// GetLeadByExternalID returns a lead by the caller's external ID.
func (oc *OutboundClient) GetLeadByExternalID(ctx context.Context, id, externalID string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetLeadByExternalID)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundGetLeadByExternalID, "id", id, "externalID", externalID); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, id, externalID)
}

// GetLeadByPhoneNumber returns a lead by phone number.
func (oc *OutboundClient) GetLeadByPhoneNumber(ctx context.Context, id, phoneNumber string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundGetLeadByPhoneNumber)
	if err != nil {
		return nil, err
	}
	if err := nonEmptyAll(endpoint.OutboundGetLeadByPhoneNumber, "id", id, "phoneNumber", phoneNumber); err != nil {
		return nil, err
	}
	return k.send(ctx, nil, id, phoneNumber)
}

// DeleteLeads deletes leads by ID. leadIDs must not be empty.
func (oc *OutboundClient) DeleteLeads(ctx context.Context, id string, leadIDs []string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundDeleteLeads)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundDeleteLeads, "id", id); err != nil {
		return nil, err
	}
	if err := nonEmptyList(endpoint.OutboundDeleteLeads, "leadIDs", leadIDs); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"leadIds": leadIDs}, id)
}

// DeleteLeadsByExternalID deletes leads by external ID. externalIDs must not be empty.
func (oc *OutboundClient) DeleteLeadsByExternalID(ctx context.Context, id string, externalIDs []string) (*nlpearl.Result, error) {
	k, err := oc.c.begin(endpoint.OutboundDeleteLeadsByExternalID)
	if err != nil {
		return nil, err
	}
	if err := nonEmpty(endpoint.OutboundDeleteLeadsByExternalID, "id", id); err != nil {
		return nil, err
	}
	if err := nonEmptyList(endpoint.OutboundDeleteLeadsByExternalID, "externalIDs", externalIDs); err != nil {
		return nil, err
	}
	return k.send(ctx, map[string]any{"leadExternalIds": externalIDs}, id)
}
