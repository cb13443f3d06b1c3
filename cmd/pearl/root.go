package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/client"
	"github.com/spetersoncode/nlpearl/internal/config"
)

// app holds the state shared by every command of one invocation.
type app struct {
	out io.Writer

	verbose    bool
	configFile string
	field      string

	logger *zap.Logger
	client *client.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "pearl",
		Short: "Command-line client for the NLPearl voice agent API",
		Long: `pearl calls the NLPearl API and prints the JSON response.

API v2 organises campaigns as Pearls. API v1 has separate inbound and
outbound campaigns; select it with --api-version v1 or PEARL_API_VERSION=v1.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging of requests")
	pf.StringVar(&a.configFile, "config", "", "Config file (yaml, json or toml)")
	pf.String("api-key", "", "API key (or set PEARL_API_KEY)")
	pf.String("api-version", "", "API version, v1 or v2 (or set PEARL_API_VERSION; default v2)")
	pf.String("base-url", "", "API root without version (or set PEARL_BASE_URL)")
	pf.Duration("timeout", 0, "Request timeout (or set PEARL_TIMEOUT; default 30s)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (or set PEARL_LOG_LEVEL)")
	pf.StringVar(&a.field, "field", "", "Print only this field of the response (gjson path, e.g. results.#.id)")

	root.AddCommand(
		a.accountCmd(),
		a.callCmd(),
		a.pearlCmd(),
		a.inboundCmd(),
		a.outboundCmd(),
		a.leadCmd(),
	)
	return root
}

// setup loads configuration and builds the logger and client.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	if a.verbose {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		a.logger, err = zc.Build()
	} else {
		a.logger, err = cfg.Logger()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.client = cfg.NewClient(a.logger)
	return nil
}

type callFunc func(ctx context.Context) (*nlpearl.Result, error)

// run executes an SDK call and prints its result.
func (a *app) run(cmd *cobra.Command, call callFunc) error {
	res, err := call(cmd.Context())
	if err != nil {
		return err
	}
	return a.print(res)
}

func (a *app) print(res *nlpearl.Result) error {
	if a.field != "" {
		v := res.Get(a.field)
		if !v.Exists() {
			return fmt.Errorf("field %q not found in response", a.field)
		}
		_, err := fmt.Fprintln(a.out, v.String())
		return err
	}

	if !res.IsJSON() {
		if res.Text != "" {
			_, err := fmt.Fprintln(a.out, res.Text)
			return err
		}
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, res.Raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := a.out.Write(buf.Bytes())
	return err
}
