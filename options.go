package nlpearl

// Default paging values sent by list operations.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Options holds the optional parameters of an operation.
// A nil field means "not provided" and is omitted from the request;
// a non-nil zero value (an empty tag list, status 0) is sent as given.
// Operations ignore options they do not understand.
type Options struct {
	Skip        *int
	Limit       *int
	SortProp    *string
	Ascending   *bool
	Tags        []string
	Statuses    []int
	SearchInput *string
	Status      *int
	PhoneNumber *string
	ExternalID  *string
	TimeZoneID  *string
	CallData    map[string]any
}

// Option is a functional option for configuring a request.
type Option func(*Options)

// WithSkip sets the number of entries to skip for pagination.
func WithSkip(n int) Option {
	return func(o *Options) {
		o.Skip = &n
	}
}

// WithLimit sets the maximum number of entries to return.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = &n
	}
}

// WithSortProp sets the property to sort by.
func WithSortProp(prop string) Option {
	return func(o *Options) {
		o.SortProp = &prop
	}
}

// WithAscending sets the sort direction. Lists are ascending unless told otherwise.
func WithAscending(asc bool) Option {
	return func(o *Options) {
		o.Ascending = &asc
	}
}

// WithTags filters by tags. Calling it with no tags sends an empty list.
func WithTags(tags ...string) Option {
	return func(o *Options) {
		o.Tags = append([]string{}, tags...)
	}
}

// WithStatuses filters by status codes. Calling it with no statuses sends an empty list.
func WithStatuses(statuses ...int) Option {
	return func(o *Options) {
		o.Statuses = append([]int{}, statuses...)
	}
}

// WithSearchInput filters by free text.
func WithSearchInput(s string) Option {
	return func(o *Options) {
		o.SearchInput = &s
	}
}

// WithStatus sets a single status: the v1 lead filter, or the new status on a lead update.
func WithStatus(status int) Option {
	return func(o *Options) {
		o.Status = &status
	}
}

// WithPhoneNumber sets the phone number on a lead update.
func WithPhoneNumber(phone string) Option {
	return func(o *Options) {
		o.PhoneNumber = &phone
	}
}

// WithExternalID sets the caller's own identifier for a lead.
func WithExternalID(id string) Option {
	return func(o *Options) {
		o.ExternalID = &id
	}
}

// WithTimeZoneID sets the lead's time zone identifier.
func WithTimeZoneID(tz string) Option {
	return func(o *Options) {
		o.TimeZoneID = &tz
	}
}

// WithCallData attaches additional data passed to the agent during the call.
func WithCallData(data map[string]any) Option {
	return func(o *Options) {
		o.CallData = data
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SkipOrDefault returns the skip value, or DefaultSkip when unset.
func (o *Options) SkipOrDefault() int {
	if o.Skip != nil {
		return *o.Skip
	}
	return DefaultSkip
}

// LimitOrDefault returns the limit value, or DefaultLimit when unset.
func (o *Options) LimitOrDefault() int {
	if o.Limit != nil {
		return *o.Limit
	}
	return DefaultLimit
}

// AscendingOrDefault returns the sort direction, ascending when unset.
func (o *Options) AscendingOrDefault() bool {
	if o.Ascending != nil {
		return *o.Ascending
	}
	return true
}
