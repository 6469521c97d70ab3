// Package foodapi provides access to the public recipe dataset
// (COOKRCP01) with a process-wide cached snapshot.
package foodapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/fridgewise/v1/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Client fetches the public recipe corpus page by page
type Client struct {
	cfg    config.FoodAPIConfig
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new dataset client
func NewClient(cfg config.FoodAPIConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// rawRow is one row of the upstream response. Instruction steps arrive
// as MANUAL01..MANUAL20 with matching MANUAL_IMG columns, so the row is
// decoded as a flat string map.
type rawRow map[string]string

type corpusResponse struct {
	Service struct {
		Rows []rawRow `json:"row"`
	} `json:"COOKRCP01"`
}

var stepNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// FetchAll retrieves up to MaxRows recipes from the dataset
func (c *Client) FetchAll(ctx context.Context) ([]recipe.PublicRecipe, error) {
	pageSize := c.cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}
	maxRows := c.cfg.MaxRows
	if maxRows <= 0 {
		maxRows = 1000
	}

	var all []recipe.PublicRecipe
	for start := 1; start <= maxRows; start += pageSize {
		end := start + pageSize - 1
		if end > maxRows {
			end = maxRows
		}

		rows, err := c.fetchPage(ctx, start, end)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			all = append(all, parseRow(row))
		}
		// A short page means the dataset is exhausted
		if len(rows) < end-start+1 {
			break
		}
	}

	c.logger.Info("public recipe corpus fetched", zap.Int("recipes", len(all)))
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, start, end int) ([]rawRow, error) {
	apiKey := c.cfg.APIKey
	if apiKey == "" {
		apiKey = "sample"
	}
	url := fmt.Sprintf("%s/%s/COOKRCP01/json/%d/%d", c.cfg.BaseURL, apiKey, start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("corpus fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("corpus fetch returned status %d", resp.StatusCode)
	}

	var parsed corpusResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode corpus response: %w", err)
	}

	return parsed.Service.Rows, nil
}

// parseRow maps an upstream row onto the domain type
func parseRow(row rawRow) recipe.PublicRecipe {
	var steps []recipe.Step
	for i := 1; i <= 20; i++ {
		text := strings.TrimSpace(row[fmt.Sprintf("MANUAL%02d", i)])
		if text == "" {
			continue
		}
		steps = append(steps, recipe.Step{
			Text:  strings.TrimSpace(stepNumberPrefix.ReplaceAllString(text, "")),
			Image: row[fmt.Sprintf("MANUAL_IMG%02d", i)],
		})
	}

	return recipe.PublicRecipe{
		ID:          row["RCP_SEQ"],
		Name:        row["RCP_NM"],
		Category:    row["RCP_PAT2"],
		Method:      row["RCP_WAY2"],
		Ingredients: row["RCP_PARTS_DTLS"],
		Steps:       steps,
		Image:       row["ATT_FILE_NO_MAIN"],
		Tip:         row["RCP_NA_TIP"],
		Calories:    row["INFO_ENG"],
	}
}
