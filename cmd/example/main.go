// Command example walks through the NLPearl API under both versions using
// the process-wide API key and version.
//
// Set PEARL_API_KEY (a .env file works) and optionally PEARL_ID to a Pearl
// or outbound campaign ID to exercise the per-campaign calls.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/client"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	key := os.Getenv("PEARL_API_KEY")
	if key == "" {
		fmt.Fprintln(os.Stderr, "PEARL_API_KEY is not set")
		os.Exit(1)
	}
	nlpearl.SetAPIKey(key)

	// A zero Config follows the process-wide key and version.
	c := client.New(client.Config{})
	id := os.Getenv("PEARL_ID")

	fmt.Println("=== API v2 ===")
	fmt.Println("Base URL:", c.BaseURL())
	showAccount(ctx, c)
	showPearls(ctx, c)
	if id != "" {
		showPearl(ctx, c, id)
	}

	fmt.Println("\n=== API v1 ===")
	nlpearl.SetVersion(nlpearl.V1)
	fmt.Println("Base URL:", c.BaseURL())
	showOutbounds(ctx, c)

	// Pearls do not exist in v1; the client says so without calling the API.
	_, err := c.Pearl.GetAll(ctx)
	var mismatch *nlpearl.VersionMismatchError
	if errors.As(err, &mismatch) {
		fmt.Println("Expected:", mismatch)
	}

	nlpearl.SetVersion(nlpearl.DefaultVersion)
}

func showAccount(ctx context.Context, c *client.Client) {
	acct, err := nlpearl.As[nlpearl.Account](c.Account.Get(ctx))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Account: %s (credit %.2f, %d agents)\n", acct.Name, acct.CreditBalance, acct.TotalAgents)
}

func showPearls(ctx context.Context, c *client.Client) {
	res, err := c.Pearl.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	pearls := res.Get("@this").Array()
	fmt.Printf("Pearls: %d\n", len(pearls))
	for _, p := range pearls {
		fmt.Printf("  - %s (ID: %s, status %d)\n", p.Get("name").String(), p.Get("id").String(), p.Get("status").Int())
	}
}

func showPearl(ctx context.Context, c *client.Client, id string) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	calls, err := nlpearl.As[nlpearl.Page[nlpearl.Call]](
		c.Pearl.GetCalls(ctx, id, nlpearl.At(from), nlpearl.At(to), nlpearl.WithLimit(5), nlpearl.WithAscending(false)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Calls in the last 30 days: %d\n", calls.Count)
	for _, call := range calls.Results {
		fmt.Printf("  - %s %s -> %s, %ds\n", call.ID, call.From, call.To, call.Duration)
	}

	analytics, err := c.Pearl.GetAnalytics(ctx, id, nlpearl.At(from), nlpearl.At(to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Analytics:", analytics)

	leads, err := nlpearl.As[nlpearl.Page[nlpearl.Lead]](c.Outbound.GetLeads(ctx, id, nlpearl.WithLimit(5)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Leads: %d\n", leads.Count)
}

func showOutbounds(ctx context.Context, c *client.Client) {
	res, err := c.Outbound.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Outbound campaigns: %d\n", len(res.Get("@this").Array()))
}
