package client

import (
	"context"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// AccountClient reads account information.
type AccountClient struct {
	c *Client
}

// Get returns the account the API key belongs to. Decodes into nlpearl.Account.
func (a *AccountClient) Get(ctx context.Context) (*nlpearl.Result, error) {
	k, err := a.c.begin(endpoint.AccountGet)
	if err != nil {
		return nil, err
	}
	return k.send(ctx, nil)
}
