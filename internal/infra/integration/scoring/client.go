package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Client fala com o serviço do modelo de conversão. O modelo recebe o vetor
// [quote_value, item_count, conversion_days] e devolve uma probabilidade.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Timeout na borda: quem chama decide o fallback
		},
	}
}

func (c *Client) PredictProbability(ctx context.Context, quoteValue float64, itemCount, conversionDays int) (float64, error) {
	payload := predictRequest{
		Features: [][]float64{{quoteValue, float64(itemCount), float64(conversionDays)}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("modelo de scoring inacessível: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("modelo de scoring retornou status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("resposta inválida do modelo: %w", err)
	}

	// Probabilidade fora de [0,1] é violação de contrato: clampa e avisa
	p := out.Probability
	if p < 0 || p > 1 {
		log.Printf("⚠️ Modelo devolveu probabilidade fora do contrato: %f", p)
		if p < 0 {
			p = 0
		} else {
			p = 1
		}
	}

	return p, nil
}
