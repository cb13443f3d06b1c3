package main

import (
	"github.com/spf13/cobra"

	nlpearl "github.com/spetersoncode/nlpearl"
)

// rangeFlags is a --from/--to pair.
type rangeFlags struct {
	from, to string
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "Start date, ISO 8601 (e.g. 2024-01-01)")
	cmd.Flags().StringVar(&r.to, "to", "", "End date, ISO 8601")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (r *rangeFlags) dates() (nlpearl.Date, nlpearl.Date) {
	return nlpearl.DateString(r.from), nlpearl.DateString(r.to)
}

// listFlags are the paging and filter flags of search commands.
// Only flags set on the command line are sent.
type listFlags struct {
	skip, limit int
	sortProp    string
	descending  bool
	tags        []string
	statuses    []int
	search      string
}

// listFilters selects which filters a command offers.
type listFilters struct {
	tags, statuses, search bool
}

func (l *listFlags) register(cmd *cobra.Command, f listFilters) {
	fs := cmd.Flags()
	fs.IntVar(&l.skip, "skip", nlpearl.DefaultSkip, "Entries to skip")
	fs.IntVar(&l.limit, "limit", nlpearl.DefaultLimit, "Maximum entries to return")
	fs.StringVar(&l.sortProp, "sort", "", "Property to sort by")
	fs.BoolVar(&l.descending, "desc", false, "Sort descending")
	if f.tags {
		fs.StringSliceVar(&l.tags, "tag", nil, "Filter by tag (repeatable)")
	}
	if f.statuses {
		fs.IntSliceVar(&l.statuses, "status", nil, "Filter by status code (repeatable)")
	}
	if f.search {
		fs.StringVar(&l.search, "search", "", "Free-text filter")
	}
}

func (l *listFlags) options(cmd *cobra.Command) []nlpearl.Option {
	fs := cmd.Flags()
	var opts []nlpearl.Option
	if fs.Changed("skip") {
		opts = append(opts, nlpearl.WithSkip(l.skip))
	}
	if fs.Changed("limit") {
		opts = append(opts, nlpearl.WithLimit(l.limit))
	}
	if fs.Changed("sort") {
		opts = append(opts, nlpearl.WithSortProp(l.sortProp))
	}
	if fs.Changed("desc") {
		opts = append(opts, nlpearl.WithAscending(!l.descending))
	}
	if fs.Changed("tag") {
		opts = append(opts, nlpearl.WithTags(l.tags...))
	}
	if fs.Changed("status") {
		opts = append(opts, nlpearl.WithStatuses(l.statuses...))
	}
	if fs.Changed("search") {
		opts = append(opts, nlpearl.WithSearchInput(l.search))
	}
	return opts
}

// leadFlags are the optional lead attributes.
type leadFlags struct {
	externalID string
	timeZoneID string
	callData   map[string]string
}

func (l *leadFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&l.externalID, "external-id", "", "Your own identifier for the lead")
	fs.StringVar(&l.timeZoneID, "time-zone", "", "Lead time zone, e.g. Europe/Paris")
	fs.StringToStringVar(&l.callData, "data", nil, "Call data passed to the agent, key=value (repeatable)")
}

func (l *leadFlags) options(cmd *cobra.Command) []nlpearl.Option {
	fs := cmd.Flags()
	var opts []nlpearl.Option
	if fs.Changed("external-id") {
		opts = append(opts, nlpearl.WithExternalID(l.externalID))
	}
	if fs.Changed("time-zone") {
		opts = append(opts, nlpearl.WithTimeZoneID(l.timeZoneID))
	}
	if fs.Changed("data") {
		opts = append(opts, nlpearl.WithCallData(callData(l.callData)))
	}
	return opts
}

func callData(kv map[string]string) map[string]any {
	data := make(map[string]any, len(kv))
	for k, v := range kv {
		data[k] = v
	}
	return data
}
