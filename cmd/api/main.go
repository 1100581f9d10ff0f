package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/coresales/internal/infra/catalog"
	"github.com/xavierca1/coresales/internal/infra/database"
	"github.com/xavierca1/coresales/internal/infra/http/handlers"
	"github.com/xavierca1/coresales/internal/infra/http/middleware"
	"github.com/xavierca1/coresales/internal/infra/integration/crm"
	"github.com/xavierca1/coresales/internal/infra/integration/groq"
	"github.com/xavierca1/coresales/internal/infra/integration/scoring"
	"github.com/xavierca1/coresales/internal/infra/mail"
	"github.com/xavierca1/coresales/internal/infra/queue"
	"github.com/xavierca1/coresales/internal/infra/worker"
	"github.com/xavierca1/coresales/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %s", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ %s", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)

	// 2. Gateways e Adapters
	scoringClient := scoring.NewClient(getenv("SCORING_API_URL", "http://localhost:8000"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var crmGateway usecase.CRMGateway
	if os.Getenv("USE_CRM") == "true" {
		crmGateway = crm.NewSalesforceClient(os.Getenv("SALESFORCE_URL"), os.Getenv("SALESFORCE_TOKEN"))
	} else {
		// Sem credenciais reais: roda com os leads simulados
		crmGateway = crm.NewMockClient()
	}

	bodyGenerator := groq.NewClient(os.Getenv("GROQ_API_KEY"))
	mailer := mail.NewSalesMailer(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		bodyGenerator,
	)

	useCases := catalog.UseCases()

	// 3. UseCases
	enrichUC := usecase.NewEnrichLeadUseCase(scoringClient)
	segmentationUC := usecase.NewRunSegmentationUseCase(leadRepo, enrichUC)
	createCampaignUC := usecase.NewCreateCampaignUseCase(leadRepo, campaignRepo)
	syncCRMUC := usecase.NewSyncCRMUseCase(crmGateway, producer)

	// 4. Worker (consome a fila de ingestão)
	ingestWorker := queue.NewWorker(rabbitMQ.Ch, enrichUC, leadRepo)
	go ingestWorker.Start(queue.QueueName)

	// 5. Scheduler (ciclos recorrentes)
	dispatcher := worker.NewCampaignDispatcher(leadRepo, campaignRepo, mailer, useCases)
	scheduler := worker.NewAutomationScheduler(campaignRepo, segmentationUC, syncCRMUC, dispatcher)
	scheduler.Start()
	defer scheduler.Stop()

	// 6. Handlers
	healthHandler := handlers.NewHealthHandler()
	leadHandler := handlers.NewLeadHandler(leadRepo, enrichUC, producer)
	segmentationHandler := handlers.NewSegmentationHandler(segmentationUC, leadRepo)
	useCaseHandler := handlers.NewUseCaseHandler(useCases, crmGateway)
	campaignHandler := handlers.NewCampaignHandler(createCampaignUC, campaignRepo)
	emailHandler := handlers.NewEmailHandler(mailer, scoringClient, useCases)
	crmHandler := handlers.NewCRMHandler(syncCRMUC)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/health", healthHandler.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", leadHandler.CaptureLead)
	r.Get("/leads", leadHandler.ListLeads)
	r.Post("/leads/upload", leadHandler.BulkUpload)

	r.Post("/segmentation/run", segmentationHandler.HandleRun)
	r.Get("/segmentation/analytics", segmentationHandler.HandleAnalytics)

	r.Get("/use-cases", useCaseHandler.HandleList)
	r.Post("/use-cases/match", useCaseHandler.HandleMatch)

	r.Post("/campaigns/create", campaignHandler.HandleCreate)
	r.Get("/campaigns", campaignHandler.HandleList)

	r.Post("/send-email", emailHandler.HandleSendEmail)
	r.Post("/predict", emailHandler.HandlePredict)

	r.Post("/crm/sync", crmHandler.HandleSync)

	port := ":" + getenv("PORT", "8080")
	log.Printf("🔥 CoreSales Outbound Backend rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
