// Package main implements the chain CLI for running the support query chain
// locally or against a running service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/avvvet/supportchain/internal/category"
	"github.com/avvvet/supportchain/internal/models"
	"github.com/avvvet/supportchain/internal/pipeline"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var (
	natsURL     string
	natsSubject string
	timeout     time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chain",
	Short: "Classify banking support queries",
	Long: `chain runs the five-stage support query chain: intent interpretation,
category mapping, category selection, details extraction and response generation.`,
}

func init() {
	askCmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	askCmd.Flags().StringVar(&natsSubject, "subject", "chain.analyze", "request subject")
	askCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// runCmd runs the chain in process
var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run the chain locally and print each stage",
	Long: `Run the chain locally and print each stage output as JSON.

Examples:
  chain run "I can't log into my online banking account"
  chain run ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStages(cmd.OutOrStdout(), pipeline.Run(args[0]))
	},
}

// askCmd sends the query to a running service over NATS
var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Send a query to the chain service",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		printCategories(cmd.OutOrStdout())
		return nil
	},
}

func printStages(w io.Writer, outputs models.ChainOutputs) error {
	for i, out := range outputs.Slice() {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stage %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "Stage %d - %s: %s\n\n", i+1, pipeline.StageNames[i], data)
	}
	return nil
}

func printCategories(w io.Writer) {
	for _, c := range models.AllCategories() {
		fmt.Fprintf(w, "%-20s %s\n", c, strings.Join(category.Keywords[c], ", "))
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	nc, err := nats.Connect(natsURL, nats.Timeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", natsURL, err)
	}
	defer nc.Close()

	resp, err := ask(nc, natsSubject, args[0], timeout)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if resp.Status != models.StatusOK && resp.ErrorMessage != nil {
		return fmt.Errorf("service error: %s", *resp.ErrorMessage)
	}
	return nil
}

func ask(nc *nats.Conn, subject, query string, timeout time.Duration) (*models.ChainResponse, error) {
	payload, err := json.Marshal(models.ChainRequest{
		RequestID: uuid.NewString(),
		Query:     query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	msg, err := nc.Request(subject, payload, timeout)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", subject, err)
	}

	var resp models.ChainResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}
