package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// SalesforceClient integra com a API REST do Salesforce. Busca leads abertos
// e devolve já mapeados para o nosso schema (receita anual vira proxy de
// quote_value, headcount vira proxy de item_count, tasks+events viram
// past_engagements).
type SalesforceClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewSalesforceClient(baseURL, token string) *SalesforceClient {
	return &SalesforceClient{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *SalesforceClient) FetchLeads(ctx context.Context, limit int) ([]LeadRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	soql := fmt.Sprintf(`SELECT Id, Name, Company, Industry, AnnualRevenue, NumberOfEmployees,
		Title, Email,
		(SELECT Id FROM Tasks), (SELECT Id FROM Events)
		FROM Lead WHERE Status = 'Open - Not Contacted' LIMIT %d`, limit)

	endpoint := c.BaseURL + "/services/data/v58.0/query?q=" + url.QueryEscape(soql)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar Salesforce: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Salesforce retornou status %d", resp.StatusCode)
	}

	var out sfQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("resposta inválida do Salesforce: %w", err)
	}

	records := make([]LeadRecord, 0, len(out.Records))
	for _, r := range out.Records {
		company := r.Company
		if company == "" {
			company = r.Name
		}

		engagements := 0
		if r.Tasks != nil {
			engagements += r.Tasks.TotalSize
		}
		if r.Events != nil {
			engagements += r.Events.TotalSize
		}

		itemCount := r.NumberOfEmployees
		if itemCount <= 0 {
			itemCount = 1
		}

		records = append(records, LeadRecord{
			ID:          r.ID,
			CompanyName: company,
			JobRole:     r.Title,
			Email:       r.Email,
			// normaliza receita anual para o nosso proxy de quote_value
			QuoteValue:      r.AnnualRevenue / 100,
			ItemCount:       itemCount,
			Industry:        r.Industry,
			ConversionDays:  30, // default para lead novo
			PastEngagements: engagements,
			Source:          "Salesforce",
		})
	}

	return records, nil
}

// UpdateLeadAIData escreve o score e a história recomendada de volta no CRM.
// Assume os campos customizados AI_Score__c e AI_Recommended_Use_Case__c.
func (c *SalesforceClient) UpdateLeadAIData(ctx context.Context, leadID string, leadScore float64, useCaseTitle string) error {
	payload := sfUpdatePayload{
		AIScore:     leadScore,
		AIUseCase:   useCaseTitle,
		Description: "AI Strategy Recommendation: " + useCaseTitle,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := c.BaseURL + "/services/data/v58.0/sobjects/Lead/" + leadID

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lead no Salesforce: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Salesforce recusou o update do lead %s: status %d", leadID, resp.StatusCode)
	}

	log.Printf("✅ Lead %s atualizado no Salesforce", leadID)
	return nil
}
