package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/proposalcraft/proposalcraft-go/internal/config"
	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/prompt"
	"github.com/proposalcraft/proposalcraft-go/internal/service"
	"github.com/spf13/cobra"
)

var (
	jobText string
	jobFile string
	skills  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a proposal with the configured provider",
	RunE:  runGenerate,
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the messages that would be sent, without calling the provider",
	RunE:  runPrompt,
}

func init() {
	for _, c := range []*cobra.Command{generateCmd, promptCmd} {
		c.Flags().StringVar(&jobText, "job", "", "job description text")
		c.Flags().StringVar(&jobFile, "job-file", "", "read the job description from a file (- for stdin)")
		c.Flags().StringVar(&skills, "skills", "", "optional skills and experience summary")
		c.MarkFlagsMutuallyExclusive("job", "job-file")
		rootCmd.AddCommand(c)
	}
}

func readRequest(stdin io.Reader) (model.GenerationRequest, error) {
	req := model.GenerationRequest{JobDescription: jobText, UserSkills: skills}
	switch jobFile {
	case "":
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return req, fmt.Errorf("read stdin: %w", err)
		}
		req.JobDescription = string(b)
	default:
		b, err := os.ReadFile(jobFile)
		if err != nil {
			return req, fmt.Errorf("read job file: %w", err)
		}
		req.JobDescription = string(b)
	}
	return req, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := readRequest(cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	client, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	res, err := generate(ctx, service.NewProposalService(client), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Proposal)
	return nil
}

type generator interface {
	Generate(ctx context.Context, req model.GenerationRequest) (model.GenerationResult, error)
}

// generate returns as soon as ctx is done. The service keeps its provider
// call alive past cancellation, so the CLI stops waiting on it instead.
func generate(ctx context.Context, g generator, req model.GenerationRequest) (model.GenerationResult, error) {
	type outcome struct {
		res model.GenerationResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := g.Generate(ctx, req)
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		return model.GenerationResult{}, fmt.Errorf("generation interrupted: %w", ctx.Err())
	case o := <-done:
		return o.res, o.err
	}
}

func runPrompt(cmd *cobra.Command, args []string) error {
	req, err := readRequest(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := service.NewProposalService(nil).Validate(req); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range prompt.Conversation(req) {
		fmt.Fprintf(out, "--- %s ---\n%s\n", m.Role, m.Content)
	}
	return nil
}
