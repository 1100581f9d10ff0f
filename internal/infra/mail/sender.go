package mail

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/coresales/internal/entity"
)

// BodyGenerator produz o corpo do email de vendas (LLM).
type BodyGenerator interface {
	GenerateSalesEmail(ctx context.Context, lead *entity.Lead, uc *entity.UseCase) (string, error)
}

func NewSalesMailer(host string, port int, user, password string, generator BodyGenerator) *SalesMailer {
	return &SalesMailer{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		Generator: generator,
	}
}

// SendSales gera o corpo e envia via SMTP. Retorna uma mensagem legível;
// a categoria da falha (autenticação x transporte) é só informativa — para
// quem chama, não enviado é não enviado.
func (s *SalesMailer) SendSales(ctx context.Context, to, subject string, lead *entity.Lead, uc *entity.UseCase) (string, error) {
	if s.User == "" || s.Password == "" {
		return "", fmt.Errorf("credenciais SMTP não configuradas (MAIL_USER / MAIL_PASS)")
	}

	body, err := s.Generator.GenerateSalesEmail(ctx, lead, uc)
	if err != nil {
		// LLM fora do ar não bloqueia a campanha: cai no template fixo
		log.Printf("⚠️ Geração de email via LLM falhou para %s: %v", lead.CompanyName, err)
		body = s.fallbackBody(lead)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return fmt.Sprintf("Email enviado com sucesso para %s", to), nil
}

func (s *SalesMailer) fallbackBody(lead *entity.Lead) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"We help companies like yours modernize their IT operations. "+
			"Based on your profile, we believe we can add real value to your current initiatives.\n\n"+
			"Would you be open to a quick call this week?\n\n"+
			"Best regards,\nCoreSales Team",
		lead.CompanyName,
	)
}
