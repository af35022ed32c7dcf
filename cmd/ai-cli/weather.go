package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sraesch/go-ai/internal/config"
	"github.com/sraesch/go-ai/openrouter"
)

// weatherParameter is the argument shape of the get_weather tool.
type weatherParameter struct {
	Latitude  float64 `json:"latitude" jsonschema:"description=The latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"description=The longitude of the location"`
}

// runWeather demonstrates a full tool-calling cycle: the model requests
// a get_weather call, the CLI executes it against the Open-Meteo API
// and feeds the temperature back, and the model answers in text.
func runWeather(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("weather", flag.ExitOnError)
	common := registerCommon(fs, cfg)
	model := fs.String("model", cfg.Model, "the model to use")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *model == "" {
		return errors.New("weather: -model is required")
	}

	client, err := common.setup(cfg)
	if err != nil {
		return err
	}

	req := openrouter.NewChatRequest(*model, []openrouter.Message{
		openrouter.UserMessage("What is the weather like in Paris today?"),
	})
	req.AddTool(openrouter.NewTool[weatherParameter](
		"get_weather",
		"Get current temperature for a given location.",
	).MustJSON())
	if err := req.SetToolChoice(openrouter.ToolChoiceRequired); err != nil {
		return err
	}

	choices, err := client.ChatCompletion(ctx, req)
	if err != nil {
		return err
	}
	if len(choices) == 0 || len(choices[0].Message.ToolCalls) == 0 {
		return errors.New("model did not request a tool call")
	}

	req.AddMessage(choices[0].Message)

	call := choices[0].Message.ToolCalls[0]
	var params weatherParameter
	if err := call.DecodeArguments(&params); err != nil {
		return err
	}

	slog.Info("executing weather lookup",
		"latitude", params.Latitude,
		"longitude", params.Longitude)

	temperature, err := fetchTemperature(ctx, params)
	if err != nil {
		return err
	}

	slog.Info("weather lookup finished", "temperature", temperature)

	req.AddMessage(openrouter.ToolMessage(call.ID,
		fmt.Sprintf("The current temperature is %.1f°C", temperature)))

	choices, err = client.ChatCompletion(ctx, req)
	if err != nil {
		return err
	}

	for _, choice := range choices {
		fmt.Printf("Response: %s\n", choice.Message.Content)
	}

	return nil
}

// fetchTemperature queries the Open-Meteo forecast API for the current
// temperature at the given coordinates.
func fetchTemperature(ctx context.Context, params weatherParameter) (float64, error) {
	url := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%g&longitude=%g&current=temperature_2m",
		params.Latitude, params.Longitude)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating weather request: %w", err)
	}

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("fetching weather data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var weather struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		return 0, fmt.Errorf("parsing weather data: %w", err)
	}

	return weather.Current.Temperature, nil
}
