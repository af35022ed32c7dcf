// Command ai-cli is a command-line front end for the OpenRouter
// chat-completion API: list models, send a prompt, or run the
// tool-calling weather demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sraesch/go-ai/internal/config"
	"github.com/sraesch/go-ai/openrouter"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch args[0] {
	case "models":
		return runModels(ctx, cfg, args[1:])
	case "prompt":
		return runPrompt(ctx, cfg, args[1:])
	case "weather":
		return runWeather(ctx, cfg, args[1:])
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: ai-cli <command> [flags]

Commands:
  models   List the models available in the API
  prompt   Send a single prompt to a model
  weather  Tool-calling demo using the Open-Meteo API

Run 'ai-cli <command> -h' for command flags.`)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	endpoint string
	logLevel string
}

func registerCommon(fs *flag.FlagSet, cfg *config.Config) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.endpoint, "endpoint", cfg.APIEndpoint, "API endpoint to use")
	fs.StringVar(&c.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	return c
}

func (c *commonFlags) setup(cfg *config.Config) (*openrouter.Client, error) {
	initLogging(c.logLevel)
	return openrouter.New(cfg.APIKey, openrouter.WithBaseURL(c.endpoint))
}

func initLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "trace", "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
}

func runModels(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	common := registerCommon(fs, cfg)
	search := fs.String("search", "", "filter models by name substring")
	structuredOutput := fs.Bool("structured-output", false, "only models that support structured output")
	tools := fs.Bool("tools", false, "only models that support function calling")
	toolChoice := fs.Bool("tool-choice", false, "only models that support tool choice")
	showPricing := fs.Bool("pricing", false, "show pricing information")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.setup(cfg)
	if err != nil {
		return err
	}

	models, err := client.Models(ctx)
	if err != nil {
		return err
	}

	for _, model := range models.Models {
		if *search != "" && !strings.Contains(strings.ToLower(model.Name), strings.ToLower(*search)) {
			continue
		}
		if *structuredOutput && !model.Supports("structured_outputs") {
			continue
		}
		if *tools && !model.Supports("tools") {
			continue
		}
		if *toolChoice && !model.Supports("tool_choice") {
			continue
		}

		fmt.Printf("Model: %s\n", model.Name)
		fmt.Printf("  ID: %s\n", model.ID)
		fmt.Printf("  Context length: %d\n", model.ContextLength)
		if *showPricing {
			fmt.Printf("  Pricing: %s\n", model.Pricing)
		}
	}

	return nil
}

func runPrompt(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("prompt", flag.ExitOnError)
	common := registerCommon(fs, cfg)
	prompt := fs.String("prompt", "", "the prompt to send")
	model := fs.String("model", cfg.Model, "the model to use")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *prompt == "" {
		return errors.New("prompt: -prompt is required")
	}
	if *model == "" {
		return errors.New("prompt: -model is required")
	}

	client, err := common.setup(cfg)
	if err != nil {
		return err
	}

	req := openrouter.NewChatRequest(*model, []openrouter.Message{
		openrouter.UserMessage(*prompt),
	})

	choices, err := client.ChatCompletion(ctx, req)
	if err != nil {
		return err
	}

	for _, choice := range choices {
		fmt.Printf("Response: %s\n", choice.Message.Content)
	}

	return nil
}
