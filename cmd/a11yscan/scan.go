package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"a11yscan/analyze"
	"a11yscan/fetch"
	"a11yscan/render"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url|file|->",
	Short: "Analyze one page and print the report",
	Long:  "Analyze a URL, a local HTML file, or stdin (-) and print the categorized accessibility report.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Bool("json", false, "print the raw JSON envelope instead of the console report")
	scanCmd.Flags().String("out", "", "also write an HTML report page to this path")
	scanCmd.Flags().String("user-agent", "", "user-agent for remote fetches")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Keep stdout clean for the report; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	req, err := scanRequest(args[0])
	if err != nil {
		return err
	}

	ua, _ := cmd.Flags().GetString("user-agent")
	gate := fetch.New(fetch.Config{UserAgent: ua, Logger: logger})
	svc := analyze.New(gate, logger)

	res, err := svc.Analyze(cmd.Context(), req)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		render.Console(os.Stdout, res)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		if err := render.HTML(f, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// scanRequest maps the scan target onto an analysis request: URLs are
// fetched, "-" reads stdin, anything else is a file path.
func scanRequest(target string) (analyze.Request, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return analyze.Request{URL: target}, nil
	}

	if target == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return analyze.Request{}, fmt.Errorf("read stdin: %w", err)
		}
		return analyze.Request{HTML: string(data)}, nil
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return analyze.Request{}, fmt.Errorf("read %s: %w", target, err)
	}
	return analyze.Request{HTML: string(data)}, nil
}
