// Package ollama adapts a local Ollama instance into the consistency-check
// capability. The engine works without it; every call here fails open at the
// caller.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/okorolenko/semantic-audit/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func New(baseURL, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Checker asks the model whether two usages of a term carry conflicting
// meanings. Implements ports.ConsistencyChecker.
type Checker struct {
	client   *Client
	executor *resilience.Executor
}

func NewChecker(client *Client, executor *resilience.Executor) *Checker {
	return &Checker{client: client, executor: executor}
}

type consistencyVerdict struct {
	Inconsistent bool   `json:"inconsistent"`
	Reason       string `json:"reason"`
}

func (c *Checker) CheckConsistency(ctx context.Context, term, contextA, contextB string) (bool, error) {
	prompt := buildConsistencyPrompt(term, contextA, contextB)

	var verdict consistencyVerdict
	call := func(callCtx context.Context) error {
		raw, err := c.client.generateJSON(callCtx, prompt)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(extractJSONObject(raw)), &verdict); err != nil {
			return fmt.Errorf("parse consistency verdict: %w", err)
		}
		return nil
	}

	if c.executor == nil {
		if err := call(ctx); err != nil {
			return false, err
		}
		return verdict.Inconsistent, nil
	}
	if err := c.executor.Execute(ctx, "consistency_check", call, classifyOllamaError); err != nil {
		return false, err
	}
	return verdict.Inconsistent, nil
}

func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/api/generate", reqBody, &response, "generate"); err != nil {
		return "", err
	}
	return strings.TrimSpace(response.Response), nil
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
