// Package client provides the NLPearl API client, grouped by resource.
//
// The Client routes every call to the endpoint shape of the active API
// version and rejects calls that do not exist in that version before any
// request is sent:
//
//   - Account and Call: both versions
//   - Inbound: v1 only (use Pearl under v2)
//   - Outbound: campaign and calling methods are v1 only; lead methods work
//     under both versions
//   - Pearl: v2 only, except ResetCustomerMemory which works under both
//
// # Basic Usage
//
// Configure the client explicitly:
//
//	c := client.New(client.Config{
//	    APIKey:  os.Getenv("PEARL_API_KEY"),
//	    Version: nlpearl.V2,
//	})
//
//	acct, err := nlpearl.As[nlpearl.Account](c.Account.Get(ctx))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(acct.Name, acct.CreditBalance)
//
// Or leave Config empty and use the process-wide settings, which are read
// at the start of every call:
//
//	nlpearl.SetAPIKey(os.Getenv("PEARL_API_KEY"))
//	nlpearl.SetVersion(nlpearl.V1)
//	c := client.New(client.Config{})
//
// # Optional Parameters
//
// Optional filters and lead attributes are functional options. Only options
// that are given are sent:
//
//	res, err := c.Outbound.AddLead(ctx, pearlID, "+15550001111",
//	    nlpearl.WithExternalID("crm-42"),
//	    nlpearl.WithCallData(map[string]any{"firstName": "Ada"}),
//	)
//
// # Errors
//
// Calls fail with a *nlpearl.ConfigurationError when no API key is set, a
// *nlpearl.VersionMismatchError under the wrong version, an
// *nlpearl.InvalidArgumentError for bad input, a *nlpearl.TransportError
// for network failures and non-2xx responses, and a *nlpearl.DecodeError for
// malformed JSON. Nothing is retried.
//
// # Events
//
// Observe requests via an event channel:
//
//	events := make(chan client.Event, 100)
//	c := client.New(client.Config{Events: events})
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s took %v\n", e.Type, e.Operation, e.Duration)
//	    }
//	}()
package client
