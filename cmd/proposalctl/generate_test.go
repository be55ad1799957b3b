package main

import (
	"context"
	"errors"
	"testing"

	"github.com/proposalcraft/proposalcraft-go/internal/model"
)

type blockingGenerator struct {
	release chan struct{}
}

func (b blockingGenerator) Generate(_ context.Context, _ model.GenerationRequest) (model.GenerationResult, error) {
	<-b.release
	return model.GenerationResult{Proposal: "late"}, nil
}

type instantGenerator string

func (g instantGenerator) Generate(_ context.Context, _ model.GenerationRequest) (model.GenerationResult, error) {
	return model.GenerationResult{Proposal: string(g)}, nil
}

func TestGenerateStopsWaitingOnCancel(t *testing.T) {
	g := blockingGenerator{release: make(chan struct{})}
	defer close(g.release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generate(ctx, g, model.GenerationRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateReturnsResult(t *testing.T) {
	res, err := generate(context.Background(), instantGenerator("Dear client"), model.GenerationRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Proposal != "Dear client" {
		t.Errorf("proposal = %q, want Dear client", res.Proposal)
	}
}
