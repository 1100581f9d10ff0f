package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/coresales/internal/entity"
)

const (
	apiURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.1-8b-instant"
)

// Client gera o corpo dos emails de venda via LLM (Groq).
type Client struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey: apiKey,
		Model:  defaultModel,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateSalesEmail monta o prompt com os dados do lead e, se houver, o
// contexto da história de sucesso. O tom do email segue o score.
func (c *Client) GenerateSalesEmail(ctx context.Context, lead *entity.Lead, uc *entity.UseCase) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY não configurada")
	}

	prompt := c.buildPrompt(lead, uc)

	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar Groq: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resposta inválida do Groq: %w", err)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("Groq não retornou conteúdo (status %d): %s", resp.StatusCode, out.Error.Message)
	}

	return out.Choices[0].Message.Content, nil
}

func (c *Client) buildPrompt(lead *entity.Lead, uc *entity.UseCase) string {
	var sb strings.Builder

	sb.WriteString("You are a B2B IT sales expert.\n\n")
	fmt.Fprintf(&sb, "Customer Name: %s\n", lead.CompanyName)
	fmt.Fprintf(&sb, "Lead Score: %.2f\n", lead.LeadScore)
	fmt.Fprintf(&sb, "Quotation Value: %.2f\n", lead.QuoteValue)
	fmt.Fprintf(&sb, "Number of Items: %d\n", lead.ItemCount)

	if uc != nil {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Relevant Use Case: %s\n", uc.Title)
		fmt.Fprintf(&sb, "Customer Industry: %s\n", uc.Industry)
		fmt.Fprintf(&sb, "Customer Pain Points: %s\n", strings.Join(uc.PainPoints, ", "))
		fmt.Fprintf(&sb, "Our Solution: %s\n", uc.SolutionSummary)
		fmt.Fprintf(&sb, "Success Story: %s\n", uc.SuccessMetrics)
		sb.WriteString("\nINSTRUCTION: Align the email specifically to address the pain points above and mention the solution.\n")
	}

	sb.WriteString(`
Write a professional outbound sales email.
The tone should adapt based on the lead score:
- High score -> confident and closing
- Medium score -> warm and informative
- Low score -> introductory and educational
`)

	return sb.String()
}
