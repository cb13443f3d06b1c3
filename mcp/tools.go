package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/client"
)

type toolDef struct {
	tool    mcp.Tool
	run     runFunc
	mutates bool
}

// Argument descriptions shared by several tools.
const (
	descPearlID  = "Pearl ID (v2)"
	descCampaign = "Outbound campaign ID under API v1, Pearl ID under v2"
	descFrom     = "Start of the range, ISO 8601 (e.g. 2024-01-01 or 2024-01-01T00:00:00Z)"
	descTo       = "End of the range, ISO 8601"
)

func tools(c *client.Client) []toolDef {
	return []toolDef{
		{
			tool: mcp.NewTool("account_get",
				mcp.WithDescription("Get the account name, credit balance and agent count"),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Account.Get(ctx)
			},
		},
		{
			tool: mcp.NewTool("call_get",
				mcp.WithDescription("Get a call with its transcript, summary and collected information"),
				mcp.WithString("call_id", mcp.Required(), mcp.Description("Call ID")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Call.Get(ctx, req.GetString("call_id", ""))
			},
		},
		{
			tool: mcp.NewTool("pearl_list",
				mcp.WithDescription("List all Pearls (API v2)"),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.GetAll(ctx)
			},
		},
		{
			tool: mcp.NewTool("pearl_get",
				mcp.WithDescription("Get a Pearl (API v2)"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description(descPearlID)),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.Get(ctx, req.GetString("pearl_id", ""))
			},
		},
		{
			tool: mcp.NewTool("pearl_set_active",
				mcp.WithDescription("Activate or deactivate a Pearl (API v2)"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description(descPearlID)),
				mcp.WithBoolean("active", mcp.Required(), mcp.Description("true to activate, false to deactivate")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.SetActive(ctx, req.GetString("pearl_id", ""), req.GetBool("active", false))
			},
			mutates: true,
		},
		{
			tool: mcp.NewTool("pearl_calls",
				mcp.WithDescription("Search the calls of a Pearl in a date range (API v2)"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description(descPearlID)),
				mcp.WithString("from", mcp.Required(), mcp.Description(descFrom)),
				mcp.WithString("to", mcp.Required(), mcp.Description(descTo)),
				mcp.WithNumber("skip", mcp.Description("Entries to skip (default 0)")),
				mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 100)")),
				mcp.WithString("search", mcp.Description("Free-text filter")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.GetCalls(ctx, req.GetString("pearl_id", ""),
					dateArg(req, "from"), dateArg(req, "to"), listOptions(req)...)
			},
		},
		{
			tool: mcp.NewTool("pearl_ongoing_calls",
				mcp.WithDescription("Count the calls a Pearl has in progress and in queue (API v2)"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description(descPearlID)),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.GetOngoingCalls(ctx, req.GetString("pearl_id", ""))
			},
		},
		{
			tool: mcp.NewTool("pearl_analytics",
				mcp.WithDescription("Get analytics for a Pearl over at most 90 days (API v2)"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description(descPearlID)),
				mcp.WithString("from", mcp.Required(), mcp.Description(descFrom)),
				mcp.WithString("to", mcp.Required(), mcp.Description(descTo)),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.GetAnalytics(ctx, req.GetString("pearl_id", ""), dateArg(req, "from"), dateArg(req, "to"))
			},
		},
		{
			tool: mcp.NewTool("pearl_reset_memory",
				mcp.WithDescription("Make a Pearl forget a customer"),
				mcp.WithString("pearl_id", mcp.Required(), mcp.Description("Pearl ID")),
				mcp.WithString("phone_number", mcp.Required(), mcp.Description("Customer phone number; a leading + is added if missing")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Pearl.ResetCustomerMemory(ctx, req.GetString("pearl_id", ""), req.GetString("phone_number", ""))
			},
			mutates: true,
		},
		{
			tool: mcp.NewTool("lead_add",
				mcp.WithDescription("Add a lead to a campaign"),
				mcp.WithString("id", mcp.Required(), mcp.Description(descCampaign)),
				mcp.WithString("phone_number", mcp.Required(), mcp.Description("Lead phone number")),
				mcp.WithString("external_id", mcp.Description("Your own identifier for the lead")),
				mcp.WithString("time_zone_id", mcp.Description("Lead time zone, e.g. Europe/Paris")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Outbound.AddLead(ctx, req.GetString("id", ""), req.GetString("phone_number", ""), leadOptions(req)...)
			},
			mutates: true,
		},
		{
			tool: mcp.NewTool("lead_get",
				mcp.WithDescription("Get a lead by lead ID, external ID or phone number; give exactly one"),
				mcp.WithString("id", mcp.Required(), mcp.Description(descCampaign)),
				mcp.WithString("lead_id", mcp.Description("Lead ID")),
				mcp.WithString("external_id", mcp.Description("External ID")),
				mcp.WithString("phone_number", mcp.Description("Phone number")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				id := req.GetString("id", "")
				switch {
				case req.GetString("lead_id", "") != "":
					return c.Outbound.GetLeadByID(ctx, id, req.GetString("lead_id", ""))
				case req.GetString("external_id", "") != "":
					return c.Outbound.GetLeadByExternalID(ctx, id, req.GetString("external_id", ""))
				default:
					return c.Outbound.GetLeadByPhoneNumber(ctx, id, req.GetString("phone_number", ""))
				}
			},
		},
		{
			tool: mcp.NewTool("lead_list",
				mcp.WithDescription("Search the leads of a campaign"),
				mcp.WithString("id", mcp.Required(), mcp.Description(descCampaign)),
				mcp.WithNumber("skip", mcp.Description("Entries to skip (default 0)")),
				mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 100)")),
				mcp.WithString("search", mcp.Description("Free-text filter (API v2)")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Outbound.GetLeads(ctx, req.GetString("id", ""), listOptions(req)...)
			},
		},
		{
			tool: mcp.NewTool("lead_update",
				mcp.WithDescription("Update the given attributes of a lead"),
				mcp.WithString("id", mcp.Required(), mcp.Description(descCampaign)),
				mcp.WithString("lead_id", mcp.Required(), mcp.Description("Lead ID")),
				mcp.WithString("phone_number", mcp.Description("New phone number")),
				mcp.WithString("external_id", mcp.Description("New external ID")),
				mcp.WithString("time_zone_id", mcp.Description("New time zone")),
				mcp.WithNumber("status", mcp.Description("New lead status code")),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				opts := leadOptions(req)
				if has(req, "phone_number") {
					opts = append(opts, nlpearl.WithPhoneNumber(req.GetString("phone_number", "")))
				}
				if has(req, "status") {
					opts = append(opts, nlpearl.WithStatus(req.GetInt("status", 0)))
				}
				return c.Outbound.UpdateLead(ctx, req.GetString("id", ""), req.GetString("lead_id", ""), opts...)
			},
			mutates: true,
		},
		{
			tool: mcp.NewTool("lead_delete",
				mcp.WithDescription("Delete leads by lead ID or by external ID"),
				mcp.WithString("id", mcp.Required(), mcp.Description(descCampaign)),
				mcp.WithArray("lead_ids", mcp.Description("Lead IDs"), mcp.WithStringItems()),
				mcp.WithArray("external_ids", mcp.Description("External IDs"), mcp.WithStringItems()),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				id := req.GetString("id", "")
				if has(req, "external_ids") {
					return c.Outbound.DeleteLeadsByExternalID(ctx, id, req.GetStringSlice("external_ids", nil))
				}
				return c.Outbound.DeleteLeads(ctx, id, req.GetStringSlice("lead_ids", nil))
			},
			mutates: true,
		},
		{
			tool: mcp.NewTool("inbound_list",
				mcp.WithDescription("List inbound campaigns (API v1)"),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Inbound.GetAll(ctx)
			},
		},
		{
			tool: mcp.NewTool("outbound_list",
				mcp.WithDescription("List outbound campaigns (API v1)"),
			),
			run: func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error) {
				return c.Outbound.GetAll(ctx)
			},
		},
	}
}

func has(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}

// dateArg reads a date argument. Missing values stay unset and are
// reported by the client as invalid arguments.
func dateArg(req mcp.CallToolRequest, key string) nlpearl.Date {
	if !has(req, key) {
		return nlpearl.Date{}
	}
	return nlpearl.DateString(req.GetString(key, ""))
}

func listOptions(req mcp.CallToolRequest) []nlpearl.Option {
	var opts []nlpearl.Option
	if has(req, "skip") {
		opts = append(opts, nlpearl.WithSkip(req.GetInt("skip", 0)))
	}
	if has(req, "limit") {
		opts = append(opts, nlpearl.WithLimit(req.GetInt("limit", nlpearl.DefaultLimit)))
	}
	if has(req, "search") {
		opts = append(opts, nlpearl.WithSearchInput(req.GetString("search", "")))
	}
	return opts
}

func leadOptions(req mcp.CallToolRequest) []nlpearl.Option {
	var opts []nlpearl.Option
	if has(req, "external_id") {
		opts = append(opts, nlpearl.WithExternalID(req.GetString("external_id", "")))
	}
	if has(req, "time_zone_id") {
		opts = append(opts, nlpearl.WithTimeZoneID(req.GetString("time_zone_id", "")))
	}
	return opts
}
