package routes

import (
	"log"
	"os"
	"strconv"

	_ "atelier-service/docs" // This will be auto-generated
	"atelier-service/internal/adapter/http/handlers"
	repository2 "atelier-service/internal/adapter/persistence/repository"
	"atelier-service/internal/infrastructure/database"
	"atelier-service/internal/infrastructure/notify"
	"atelier-service/internal/infrastructure/payments"
	"atelier-service/internal/usecase"
	"atelier-service/internal/usecase/interfaces"

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

	requestRepo := repository2.NewDesignRequestDynamoRepository(ddb)
	designRepo := repository2.NewDesignDynamoRepository(ddb)
	billingRepo := repository2.NewBillingDynamoRepository(ddb)
	addOnRepo := repository2.NewAddOnDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)

	dispatcher := usecase.NewDispatcher(notify.NewKafkaNotifier(), auditRepo, userRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, designRepo, catalogRepo, dispatcher)
	designUseCase := usecase.NewDesignUseCase(designRepo, requestRepo, billingRepo, catalogRepo, dispatcher)
	billingUseCase := usecase.NewBillingUseCase(billingRepo, designRepo, paymentGateway, dispatcher)
	addOnUseCase := usecase.NewAddOnUseCase(addOnRepo, designRepo, requestRepo, billingRepo, catalogRepo, dispatcher)

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	designHandler := handlers.NewDesignHandler(designUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)
	addOnHandler := handlers.NewAddOnHandler(addOnUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAtelierRoutes(v1, requestHandler, designHandler, billingHandler, addOnHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
