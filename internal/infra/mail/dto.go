package mail

// SalesMailer envia os emails de campanha via SMTP, com corpo gerado por LLM.
type SalesMailer struct {
	Host      string
	Port      int
	User      string
	Password  string
	Generator BodyGenerator
}
