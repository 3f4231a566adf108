package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/logging"

	"github.com/sirupsen/logrus"
)

type smokeOptions struct {
	ConsoleURL string
	BackendURL string
	PathPrefix string
	Verbose    bool
}

func newSmokeCmd() *cobra.Command {
	var opts smokeOptions

	cmd := &cobra.Command{
		Use:   "run --console-url <url> --backend-url <url>",
		Short: "Hit the console health endpoint and the backend list endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.ConsoleURL) == "" {
				return errors.New("--console-url is required")
			}
			if strings.TrimSpace(opts.BackendURL) == "" {
				return errors.New("--backend-url is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := consoleHealth(ctx, opts.ConsoleURL); err != nil {
				return err
			}
			fmt.Println("console: ok")

			level := logrus.ErrorLevel
			if opts.Verbose {
				level = logrus.DebugLevel
			}
			api, err := apiclient.New(apiclient.Options{
				BaseURL:    opts.BackendURL,
				PathPrefix: opts.PathPrefix,
				Timeout:    10 * time.Second,
				Logger:     logging.ConsoleLogger(level),
			})
			if err != nil {
				return err
			}

			for _, path := range []string{
				"/events",
				"/volunteers/departments",
				"/volunteers/tasks",
				"/volunteers/attendance",
			} {
				if _, err := api.Get(ctx, path, nil); err != nil {
					return fmt.Errorf("backend smoke failed on %s: %w", path, err)
				}
				fmt.Printf("backend %s: ok\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ConsoleURL, "console-url", "http://localhost:3300", "console base URL")
	cmd.Flags().StringVar(&opts.BackendURL, "backend-url", "http://localhost:8000", "backend base URL")
	cmd.Flags().StringVar(&opts.PathPrefix, "path-prefix", "/api/v1", "backend path prefix")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "log each backend request")

	return cmd
}

func consoleHealth(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("console health failed: status=%d", resp.StatusCode)
	}
	return nil
}
