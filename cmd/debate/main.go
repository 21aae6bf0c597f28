package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dualai/debate-agent/internal/config"
	"github.com/dualai/debate-agent/internal/debate"
	"github.com/dualai/debate-agent/internal/engine"
	"github.com/dualai/debate-agent/internal/provider"
	"github.com/dualai/debate-agent/internal/summary"
	"github.com/dualai/debate-agent/internal/telemetry"
)

const (
	colorReset = "\u001b[0m"
	colorBlue  = "\u001b[94m"
	colorGreen = "\u001b[92m"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	nova := provider.NewAnthropicClient(anthropic.Model(cfg.NovaModel), option.WithAPIKey(cfg.AnthropicAPIKey))
	sage, err := provider.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.SageModel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	eng := engine.New(nova, sage, engine.WithTurnTimeout(cfg.TurnTimeout))
	gen := summary.NewGenerator(nova)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Dual-AI Dissertation Debate (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\nEnter your dissertation idea: ")
		var (
			idea string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case idea, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		idea = strings.TrimSpace(idea)
		if idea == "" {
			continue
		}
		runDebate(ctx, eng, gen, idea)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}

func runDebate(ctx context.Context, eng *engine.Engine, gen *summary.Generator, idea string) {
	st := debate.NewState()
	ctx = telemetry.WithSessionID(ctx, st.ID)
	eng.Start(st, idea)

	fmt.Println("\nThe advisors are debating...")
	if err := eng.Run(ctx, st, renderTurn); err != nil {
		fmt.Fprintf(os.Stderr, "debate ended early: %v\n", err)
	}
	if st.EndReason == debate.EndMutualRejection {
		fmt.Println("\nBoth advisors seem to find the idea unviable.")
	}

	// The transcript stays on screen either way; a failed summary only
	// costs the summary.
	fmt.Println("\nGenerating final summary...")
	rec, err := gen.Summarize(ctx, &st.Transcript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "summary unavailable: %v\n", err)
		return
	}
	renderSummary(rec)
}

func renderTurn(m debate.Message) {
	color := colorBlue
	if m.Role == debate.RoleSage {
		color = colorGreen
	}
	fmt.Printf("\n%s%s%s: %s\n", color, m.Role, colorReset, m.Content)
}

func renderSummary(rec *summary.Record) {
	fmt.Println("\nJoint Summary")
	fmt.Println("\nRubric:")
	for _, c := range summary.Criteria {
		fmt.Printf("  - %s: %d/5\n", titleCase(c), rec.Rubric[c])
	}
	fmt.Println("\nKey Points:")
	fmt.Println(rec.KeyPoints)
	fmt.Println("\nAdvisor Advice:")
	fmt.Println(rec.AdvisorAdvice)
}

// titleCase turns a rubric key like "data_availability" into "Data Availability".
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
