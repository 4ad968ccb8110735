package routes

import (
	"log"
	"os"
	"strconv"

	_ "reparotec/docs" // swag-generated documentation
	"reparotec/internal/adapter/http/handlers"
	repository "reparotec/internal/adapter/persistence/repository"
	"reparotec/internal/config"
	"reparotec/internal/infrastructure/database"
	"reparotec/internal/infrastructure/documents"
	"reparotec/internal/infrastructure/mail"
	"reparotec/internal/infrastructure/payments"
	"reparotec/internal/usecase"
	"reparotec/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)

	numbering := usecase.NewNumberingService(sequenceRepo)
	settings := config.NewEnvSettingsProvider()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var mailer interfaces.IMailer
	smtpMailer, err := mail.NewSMTPMailer()
	if err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailer = smtpMailer
	}

	renderer := documents.NewPDFRenderer(os.Getenv("SHOP_NAME"))

	jobUseCase := usecase.NewJobUseCase(jobRepo, customerRepo, numbering, settings)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, jobRepo, numbering, settings, paymentGateway)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, jobRepo, customerRepo, invoiceUseCase, settings, mailer, renderer)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	publicHandler := handlers.NewPublicHandler(jobUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, jobHandler, quoteHandler, invoiceHandler)
	addPublicRoutes(v1, publicHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
