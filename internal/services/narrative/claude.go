package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"RiverSight/internal/domain/models"
	"RiverSight/pkg/logger"
)

const systemPrompt = `You are a financial analyst assistant. You receive a machine-generated
valuation summary for one listed instrument and write a short commentary in plain prose.
State where the latest price sits relative to the valuation bands, what model produced
the bands, and what that placement usually suggests. Two or three paragraphs, no headings,
no bullet points, no investment advice.`

// ClaudeGenerator turns an analysis summary into narrative commentary using
// the Anthropic API. It implements service.NarrativeGenerator.
type ClaudeGenerator struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	log         *logger.Logger
}

// Config holds Claude generator settings.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// NewClaudeGenerator creates a commentary generator.
func NewClaudeGenerator(cfg Config, log *logger.Logger) (*ClaudeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &ClaudeGenerator{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		log:         log,
	}, nil
}

// Generate produces commentary for one analysis summary.
func (g *ClaudeGenerator) Generate(ctx context.Context, summary models.AnalysisSummary) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(summary))),
		},
	}
	if g.temperature > 0 {
		params.Temperature = anthropic.Float(g.temperature)
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude completion: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("claude completion: empty response")
	}

	g.log.Debug("generated commentary",
		logger.String("symbol", summary.Symbol),
		logger.Int("length", len(text)),
		logger.Duration("duration", time.Since(start)))
	return text, nil
}

// buildPrompt renders the summary as a compact fact sheet for the model.
func buildPrompt(s models.AnalysisSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol: %s (%s)\n", s.Symbol, s.DisplayName)
	fmt.Fprintf(&sb, "Latest price: %.2f %s\n", s.Price, s.Currency)
	fmt.Fprintf(&sb, "Valuation model: %s\n", s.ModelKind)
	if s.ModelKind == models.ModelEarningsMultiple {
		fmt.Fprintf(&sb, "Trailing EPS: %.2f\n", s.TrailingEPS)
	}
	fmt.Fprintf(&sb, "60-day average: %.2f\n", s.ShortAvg)
	fmt.Fprintf(&sb, "200-day average: %.2f\n", s.LongAvg)
	fmt.Fprintf(&sb, "Bands (low to high): %.2f, %.2f, %.2f, %.2f, %.2f\n",
		s.Bands[0], s.Bands[1], s.Bands[2], s.Bands[3], s.Bands[4])
	fmt.Fprintf(&sb, "Current zone: %s\n", s.Zone)
	return sb.String()
}
