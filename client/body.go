package client

import (
	nlpearl "github.com/spetersoncode/nlpearl"
)

// page starts a list request body: paging and sort direction are always sent.
func page(o *nlpearl.Options) map[string]any {
	body := map[string]any{
		"skip":        o.SkipOrDefault(),
		"limit":       o.LimitOrDefault(),
		"isAscending": o.AscendingOrDefault(),
	}
	if o.SortProp != nil {
		body["sortProp"] = *o.SortProp
	}
	return body
}

// datedPage is page plus the fromDate/toDate window.
func datedPage(o *nlpearl.Options, from, to nlpearl.Date) map[string]any {
	body := page(o)
	body["fromDate"] = from.String()
	body["toDate"] = to.String()
	return body
}

// callFilters selects which optional call filters an endpoint accepts.
type callFilters struct {
	statuses bool
	search   bool
}

func (f callFilters) apply(body map[string]any, o *nlpearl.Options) {
	if o.Tags != nil {
		body["tags"] = o.Tags
	}
	if f.statuses && o.Statuses != nil {
		body["statuses"] = o.Statuses
	}
	if f.search && o.SearchInput != nil {
		body["searchInput"] = *o.SearchInput
	}
}

// leadFields copies the optional lead attributes that were provided.
func leadFields(body map[string]any, o *nlpearl.Options) {
	if o.ExternalID != nil {
		body["externalId"] = *o.ExternalID
	}
	if o.TimeZoneID != nil {
		body["timeZoneId"] = *o.TimeZoneID
	}
	if o.CallData != nil {
		body["callData"] = o.CallData
	}
}

func analyticsBody(from, to nlpearl.Date) map[string]any {
	return map[string]any{"from": from.String(), "to": to.String()}
}
