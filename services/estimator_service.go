package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EstimatorService calls the external AI nutrition-estimation API. It only
// proxies; estimates come back to the client, which may then log them as a
// normal nutrition entry with source "estimated".
type EstimatorService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewEstimatorService(baseURL, apiKey string) *EstimatorService {
	return &EstimatorService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NutritionEstimate is the estimator's answer for one food description.
type NutritionEstimate struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// Estimate asks the estimator for macros of a described food and quantity.
func (s *EstimatorService) Estimate(ctx context.Context, foodName, quantity string) (*NutritionEstimate, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("nutrition estimator is not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"food":     foodName,
		"quantity": quantity,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/estimate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition estimator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimator response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("estimator API error %d: %s", resp.StatusCode, string(body))
	}

	var est NutritionEstimate
	if err := json.Unmarshal(body, &est); err != nil {
		return nil, fmt.Errorf("failed to parse estimator JSON: %w", err)
	}
	if est.FoodName == "" {
		est.FoodName = foodName
	}
	return &est, nil
}
