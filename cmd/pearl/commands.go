package main

import (
	"context"

	"github.com/spf13/cobra"

	nlpearl "github.com/spetersoncode/nlpearl"
)

func (a *app) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the account name, credit balance and agent count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Account.Get(ctx)
			})
		},
	}
}

func (a *app) callCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Inspect, place and delete calls",
	}

	get := &cobra.Command{
		Use:   "get CALL_ID",
		Short: "Show a call with its transcript and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Call.Get(ctx, args[0])
			})
		},
	}

	var to, from string
	var duration int
	create := &cobra.Command{
		Use:   "create",
		Short: "Place a call between two numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Call.Create(ctx, to, from, duration)
			})
		},
	}
	create.Flags().StringVar(&to, "to", "", "Number to call")
	create.Flags().StringVar(&from, "from", "", "Number to call from")
	create.Flags().IntVar(&duration, "duration", 0, "Call duration in seconds")
	_ = create.MarkFlagRequired("to")
	_ = create.MarkFlagRequired("from")

	del := &cobra.Command{
		Use:   "delete CALL_ID...",
		Short: "Delete one or more calls",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Call.Delete(ctx, args)
			})
		},
	}

	cmd.AddCommand(get, create, del)
	return cmd
}

// campaignOps are the operations shared by Pearls and v1 inbound/outbound campaigns.
type campaignOps struct {
	getAll    func(ctx context.Context) (*nlpearl.Result, error)
	get       func(ctx context.Context, id string) (*nlpearl.Result, error)
	setActive func(ctx context.Context, id string, active bool) (*nlpearl.Result, error)
	calls     func(ctx context.Context, id string, from, to nlpearl.Date, opts ...nlpearl.Option) (*nlpearl.Result, error)
	ongoing   func(ctx context.Context, id string) (*nlpearl.Result, error)
	analytics func(ctx context.Context, id string, from, to nlpearl.Date) (*nlpearl.Result, error)
}

// campaignCmds builds list/get/activate/calls/ongoing/analytics for a campaign kind.
// ops is resolved lazily because the client only exists once flags are parsed.
func (a *app) campaignCmds(noun string, ops func() campaignOps, filters listFilters, ongoing bool) []*cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List all " + noun + "s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, ops().getAll)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return ops().get(ctx, args[0])
			})
		},
	}

	var off bool
	activate := &cobra.Command{
		Use:   "activate ID",
		Short: "Activate a " + noun + " (--off to deactivate)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return ops().setActive(ctx, args[0], !off)
			})
		},
	}
	activate.Flags().BoolVar(&off, "off", false, "Deactivate instead")

	var callsRange rangeFlags
	var callsList listFlags
	calls := &cobra.Command{
		Use:   "calls ID",
		Short: "Search the calls of a " + noun + " in a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := callsRange.dates()
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return ops().calls(ctx, args[0], from, to, callsList.options(cmd)...)
			})
		},
	}
	callsRange.register(calls)
	callsList.register(calls, filters)

	cmds := []*cobra.Command{list, get, activate, calls}

	if ongoing {
		cmds = append(cmds, &cobra.Command{
			Use:   "ongoing ID",
			Short: "Count the calls in progress and in queue",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
					return ops().ongoing(ctx, args[0])
				})
			},
		})
	}

	var analyticsRange rangeFlags
	analytics := &cobra.Command{
		Use:   "analytics ID",
		Short: "Show analytics for at most 90 days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := analyticsRange.dates()
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return ops().analytics(ctx, args[0], from, to)
			})
		},
	}
	analyticsRange.register(analytics)

	return append(cmds, analytics)
}

func (a *app) pearlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pearl",
		Short: "Manage Pearls (API v2)",
	}
	all := listFilters{tags: true, statuses: true, search: true}
	cmd.AddCommand(a.campaignCmds("Pearl", func() campaignOps {
		p := a.client.Pearl
		return campaignOps{
			getAll:    p.GetAll,
			get:       p.Get,
			setActive: p.SetActive,
			calls:     p.GetCalls,
			ongoing:   p.GetOngoingCalls,
			analytics: p.GetAnalytics,
		}
	}, all, true)...)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset-memory PEARL_ID PHONE_NUMBER",
		Short: "Make a Pearl forget a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Pearl.ResetCustomerMemory(ctx, args[0], args[1])
			})
		},
	})
	return cmd
}

func (a *app) inboundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbound",
		Short: "Manage inbound campaigns (API v1)",
	}
	all := listFilters{tags: true, statuses: true, search: true}
	cmd.AddCommand(a.campaignCmds("inbound campaign", func() campaignOps {
		in := a.client.Inbound
		return campaignOps{
			getAll:    in.GetAll,
			get:       in.Get,
			setActive: in.SetActive,
			calls:     in.GetCalls,
			ongoing:   in.GetOngoingCalls,
			analytics: in.GetAnalytics,
		}
	}, all, true)...)
	return cmd
}

func (a *app) outboundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbound",
		Short: "Manage outbound campaigns (API v1)",
	}
	cmd.AddCommand(a.campaignCmds("outbound campaign", func() campaignOps {
		out := a.client.Outbound
		return campaignOps{
			getAll:    out.GetAll,
			get:       out.Get,
			setActive: out.SetActive,
			calls:     out.GetCalls,
			analytics: out.GetAnalytics,
		}
	}, listFilters{tags: true}, false)...)

	var data map[string]string
	makeCall := &cobra.Command{
		Use:   "make-call OUTBOUND_ID TO",
		Short: "Dial a number from an outbound campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []nlpearl.Option
			if cmd.Flags().Changed("data") {
				opts = append(opts, nlpearl.WithCallData(callData(data)))
			}
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.MakeCall(ctx, args[0], args[1], opts...)
			})
		},
	}
	makeCall.Flags().StringToStringVar(&data, "data", nil, "Call data passed to the agent, key=value (repeatable)")

	callRequest := &cobra.Command{
		Use:   "call-request REQUEST_ID",
		Short: "Show a call request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.GetCallRequest(ctx, args[0])
			})
		},
	}

	var reqRange rangeFlags
	var reqList listFlags
	callRequests := &cobra.Command{
		Use:   "call-requests OUTBOUND_ID",
		Short: "Search the call requests of an outbound campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := reqRange.dates()
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.GetCallRequests(ctx, args[0], from, to, reqList.options(cmd)...)
			})
		},
	}
	reqRange.register(callRequests)
	reqList.register(callRequests, listFilters{})

	cmd.AddCommand(makeCall, callRequest, callRequests)
	return cmd
}

func (a *app) leadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage campaign leads",
		Long: `Manage the leads of a campaign. ID is an outbound campaign ID under
API v1 and a Pearl ID under v2.`,
	}

	var addFlags leadFlags
	add := &cobra.Command{
		Use:   "add ID PHONE_NUMBER",
		Short: "Add a lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.AddLead(ctx, args[0], args[1], addFlags.options(cmd)...)
			})
		},
	}
	addFlags.register(add)

	var byExternal, byPhone bool
	get := &cobra.Command{
		Use:   "get ID KEY",
		Short: "Show a lead by lead ID, or by external ID or phone number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				switch {
				case byExternal:
					return a.client.Outbound.GetLeadByExternalID(ctx, args[0], args[1])
				case byPhone:
					return a.client.Outbound.GetLeadByPhoneNumber(ctx, args[0], args[1])
				default:
					return a.client.Outbound.GetLeadByID(ctx, args[0], args[1])
				}
			})
		},
	}
	get.Flags().BoolVar(&byExternal, "external", false, "KEY is an external ID")
	get.Flags().BoolVar(&byPhone, "phone", false, "KEY is a phone number")
	get.MarkFlagsMutuallyExclusive("external", "phone")

	var listOpts listFlags
	var statuses []int
	list := &cobra.Command{
		Use:   "list ID",
		Short: "Search leads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := listOpts.options(cmd)
			if cmd.Flags().Changed("status") {
				// v1 filters on one status, v2 on a list; the client sends the one that applies.
				if len(statuses) > 0 {
					opts = append(opts, nlpearl.WithStatus(statuses[0]))
				}
				opts = append(opts, nlpearl.WithStatuses(statuses...))
			}
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.GetLeads(ctx, args[0], opts...)
			})
		},
	}
	listOpts.register(list, listFilters{search: true})
	list.Flags().IntSliceVar(&statuses, "status", nil, "Filter by status code (v2 accepts several)")

	var updFlags leadFlags
	var phone string
	var status int
	update := &cobra.Command{
		Use:   "update ID LEAD_ID",
		Short: "Change the given attributes of a lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := updFlags.options(cmd)
			if cmd.Flags().Changed("phone") {
				opts = append(opts, nlpearl.WithPhoneNumber(phone))
			}
			if cmd.Flags().Changed("status") {
				opts = append(opts, nlpearl.WithStatus(status))
			}
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				return a.client.Outbound.UpdateLead(ctx, args[0], args[1], opts...)
			})
		},
	}
	updFlags.register(update)
	update.Flags().StringVar(&phone, "phone", "", "New phone number")
	update.Flags().IntVar(&status, "status", 0, "New status code")

	var external bool
	del := &cobra.Command{
		Use:   "delete ID LEAD_ID...",
		Short: "Delete leads by ID (or by external ID with --external)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context) (*nlpearl.Result, error) {
				if external {
					return a.client.Outbound.DeleteLeadsByExternalID(ctx, args[0], args[1:])
				}
				return a.client.Outbound.DeleteLeads(ctx, args[0], args[1:])
			})
		},
	}
	del.Flags().BoolVar(&external, "external", false, "Arguments are external IDs")

	cmd.AddCommand(add, get, list, update, del)
	return cmd
}
