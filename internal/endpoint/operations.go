package endpoint

import (
	"net/http"

	nlpearl "github.com/spetersoncode/nlpearl"
)

// Operation names.
const (
	AccountGet = "Account.Get"

	CallGet    = "Call.Get"
	CallCreate = "Call.Create"
	CallDelete = "Call.Delete"

	InboundGetAll          = "Inbound.GetAll"
	InboundGet             = "Inbound.Get"
	InboundSetActive       = "Inbound.SetActive"
	InboundGetCalls        = "Inbound.GetCalls"
	InboundGetOngoingCalls = "Inbound.GetOngoingCalls"
	InboundGetAnalytics    = "Inbound.GetAnalytics"

	OutboundGetAll                  = "Outbound.GetAll"
	OutboundGet                     = "Outbound.Get"
	OutboundSetActive               = "Outbound.SetActive"
	OutboundGetCalls                = "Outbound.GetCalls"
	OutboundGetAnalytics            = "Outbound.GetAnalytics"
	OutboundMakeCall                = "Outbound.MakeCall"
	OutboundGetCallRequest          = "Outbound.GetCallRequest"
	OutboundGetCallRequests         = "Outbound.GetCallRequests"
	OutboundAddLead                 = "Outbound.AddLead"
	OutboundUpdateLead              = "Outbound.UpdateLead"
	OutboundGetLeads                = "Outbound.GetLeads"
	OutboundGetLeadByID             = "Outbound.GetLeadByID"
	OutboundGetLeadByExternalID     = "Outbound.GetLeadByExternalID"
	OutboundGetLeadByPhoneNumber    = "Outbound.GetLeadByPhoneNumber"
	OutboundDeleteLeads             = "Outbound.DeleteLeads"
	OutboundDeleteLeadsByExternalID = "Outbound.DeleteLeadsByExternalID"

	PearlResetCustomerMemory = "Pearl.ResetCustomerMemory"
	PearlGetAll              = "Pearl.GetAll"
	PearlGet                 = "Pearl.Get"
	PearlSetActive           = "Pearl.SetActive"
	PearlGetCalls            = "Pearl.GetCalls"
	PearlGetOngoingCalls     = "Pearl.GetOngoingCalls"
	PearlGetAnalytics        = "Pearl.GetAnalytics"
)

func both(method, path string) map[nlpearl.Version]Route {
	r := Route{Method: method, Path: path}
	return map[nlpearl.Version]Route{nlpearl.V1: r, nlpearl.V2: r}
}

func v1Only(method, path string) map[nlpearl.Version]Route {
	return map[nlpearl.Version]Route{nlpearl.V1: {Method: method, Path: path}}
}

func v2Only(method, path string) map[nlpearl.Version]Route {
	return map[nlpearl.Version]Route{nlpearl.V2: {Method: method, Path: path}}
}

var operations = index(
	Operation{Name: AccountGet, Routes: both(http.MethodGet, "/Account")},

	Operation{Name: CallGet, Routes: both(http.MethodGet, "/Call/{callId}")},
	Operation{Name: CallCreate, Routes: both(http.MethodPost, "/Call")},
	Operation{Name: CallDelete, Routes: both(http.MethodDelete, "/Call")},

	// v1 inbound campaigns, unified into Pearl in v2.
	Operation{Name: InboundGetAll, Only: nlpearl.V1, Alternative: PearlGetAll,
		Routes: v1Only(http.MethodGet, "/Inbound")},
	Operation{Name: InboundGet, Only: nlpearl.V1, Alternative: PearlGet,
		Routes: v1Only(http.MethodGet, "/Inbound/{inboundId}")},
	Operation{Name: InboundSetActive, Only: nlpearl.V1, Alternative: PearlSetActive,
		Routes: v1Only(http.MethodPost, "/Inbound/{inboundId}/Active")},
	Operation{Name: InboundGetCalls, Only: nlpearl.V1, Alternative: PearlGetCalls,
		Routes: v1Only(http.MethodPost, "/Inbound/{inboundId}/Calls")},
	Operation{Name: InboundGetOngoingCalls, Only: nlpearl.V1, Alternative: PearlGetOngoingCalls,
		Routes: v1Only(http.MethodGet, "/Inbound/{inboundId}/OngoingCalls")},
	Operation{Name: InboundGetAnalytics, Only: nlpearl.V1, Alternative: PearlGetAnalytics,
		Routes: v1Only(http.MethodPost, "/Inbound/{inboundId}/Analytics")},

	// v1 outbound campaigns.
	Operation{Name: OutboundGetAll, Only: nlpearl.V1, Alternative: PearlGetAll,
		Routes: v1Only(http.MethodGet, "/Outbound")},
	Operation{Name: OutboundGet, Only: nlpearl.V1, Alternative: PearlGet,
		Routes: v1Only(http.MethodGet, "/Outbound/{outboundId}")},
	Operation{Name: OutboundSetActive, Only: nlpearl.V1, Alternative: PearlSetActive,
		Routes: v1Only(http.MethodPost, "/Outbound/{outboundId}/Active")},
	Operation{Name: OutboundGetCalls, Only: nlpearl.V1, Alternative: PearlGetCalls,
		Routes: v1Only(http.MethodPost, "/Outbound/{outboundId}/Calls")},
	Operation{Name: OutboundGetAnalytics, Only: nlpearl.V1, Alternative: PearlGetAnalytics,
		Routes: v1Only(http.MethodPost, "/Outbound/{outboundId}/Analytics")},
	Operation{Name: OutboundMakeCall, Only: nlpearl.V1,
		Routes: v1Only(http.MethodPost, "/Outbound/{outboundId}/Call")},
	Operation{Name: OutboundGetCallRequest, Only: nlpearl.V1,
		Routes: v1Only(http.MethodGet, "/Outbound/CallRequest/{requestId}")},
	Operation{Name: OutboundGetCallRequests, Only: nlpearl.V1,
		Routes: v1Only(http.MethodPost, "/Outbound/{outboundId}/CallRequest")},

	// Leads: the identifier is an outbound id in v1 and a pearl id in v2.
	Operation{Name: OutboundAddLead, Routes: map[nlpearl.Version]Route{
		nlpearl.V1: {Method: http.MethodPut, Path: "/Outbound/{outboundId}/Lead"},
		nlpearl.V2: {Method: http.MethodPost, Path: "/Outbound/{outboundId}/Lead"},
	}},
	Operation{Name: OutboundUpdateLead, Routes: both(http.MethodPut, "/Outbound/{outboundId}/Lead/{leadId}")},
	Operation{Name: OutboundGetLeads, Routes: both(http.MethodPost, "/Outbound/{outboundId}/Leads")},
	Operation{Name: OutboundGetLeadByID, Routes: both(http.MethodGet, "/Outbound/{outboundId}/Lead/{leadId}")},
	Operation{Name: OutboundGetLeadByExternalID, Routes: both(http.MethodGet, "/Outbound/{outboundId}/Lead/External/{externalId}")},
	Operation{Name: OutboundGetLeadByPhoneNumber, Routes: both(http.MethodGet, "/Outbound/{outboundId}/Lead/PhoneNumber/{phoneNumber}")},
	Operation{Name: OutboundDeleteLeads, Routes: both(http.MethodDelete, "/Outbound/{outboundId}/Leads")},
	Operation{Name: OutboundDeleteLeadsByExternalID, Routes: both(http.MethodDelete, "/Outbound/{outboundId}/Leads/External")},

	// Pearls. Memory reset moved the phone number from the path to the body in v2.
	Operation{Name: PearlResetCustomerMemory, TextFallback: true, Routes: map[nlpearl.Version]Route{
		nlpearl.V1: {Method: http.MethodPut, Path: "/Pearl/{pearlId}/Memory/{phoneNumber}/Reset"},
		nlpearl.V2: {Method: http.MethodPut, Path: "/Pearl/{pearlId}/ResetMemory"},
	}},
	Operation{Name: PearlGetAll, Only: nlpearl.V2, Routes: v2Only(http.MethodGet, "/Pearl")},
	Operation{Name: PearlGet, Only: nlpearl.V2, Routes: v2Only(http.MethodGet, "/Pearl/{pearlId}")},
	Operation{Name: PearlSetActive, Only: nlpearl.V2, Routes: v2Only(http.MethodPut, "/Pearl/{pearlId}/Active")},
	Operation{Name: PearlGetCalls, Only: nlpearl.V2, Routes: v2Only(http.MethodPost, "/Pearl/{pearlId}/Calls")},
	Operation{Name: PearlGetOngoingCalls, Only: nlpearl.V2, Routes: v2Only(http.MethodGet, "/Pearl/{pearlId}/OngoingCalls")},
	Operation{Name: PearlGetAnalytics, Only: nlpearl.V2, Routes: v2Only(http.MethodPost, "/Pearl/{pearlId}/Analytics")},
)

func index(ops ...Operation) map[string]Operation {
	m := make(map[string]Operation, len(ops))
	for _, op := range ops {
		if _, dup := m[op.Name]; dup {
			panic("endpoint: duplicate operation " + op.Name)
		}
		m[op.Name] = op
	}
	return m
}
