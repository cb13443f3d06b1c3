// Package nlpearl holds the shared types of the NLPearl voice-agent API
// client: the API version context, request options, dates, results and the
// error taxonomy. The resource methods live in package client.
//
// # Quick Start
//
//	import (
//	    nlpearl "github.com/spetersoncode/nlpearl"
//	    "github.com/spetersoncode/nlpearl/client"
//	)
//
//	nlpearl.SetAPIKey(os.Getenv("PEARL_API_KEY"))
//	c := client.New(client.Config{})
//
//	res, err := c.Pearl.GetAll(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Get("#.name"))
//
// # API Versions
//
// The process-wide version defaults to v2 and is read once at the start of
// every operation:
//
//	nlpearl.SetVersion(nlpearl.V1)
//	fmt.Println(nlpearl.ResolveBaseURL()) // https://api.nlpearl.ai/v1
//
// Any tag is accepted. Tags other than v1 use the v2 request shapes.
//
// # Dates
//
// Date-filtered operations take a Date:
//
//	from := nlpearl.On(civil.Date{Year: 2024, Month: time.January, Day: 1})
//	to := nlpearl.At(time.Now())
//
// Analytics ranges longer than MaxAnalyticsDays are rejected before any
// request is sent.
//
// # Optional Parameters
//
// Options that are not given are omitted from the request. A zero value that
// is given is sent:
//
//	c.Pearl.GetCalls(ctx, id, from, to,
//	    nlpearl.WithLimit(20),
//	    nlpearl.WithStatuses(), // sends "statuses": []
//	)
//
// # Results
//
// Every operation returns a *Result. JSON bodies can be queried with Get or
// decoded with Decode; plain-text bodies are kept in Text:
//
//	acct, err := nlpearl.As[nlpearl.Account](c.Account.Get(ctx))
//
// # Errors
//
// All errors implement CategorizedError and unwrap to a sentinel:
//
//	_, err := c.Inbound.GetAll(ctx) // under v2
//	if errors.Is(err, nlpearl.ErrVersionMismatch) {
//	    // use c.Pearl.GetAll instead
//	}
package nlpearl
