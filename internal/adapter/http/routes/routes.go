package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "claims_assessment/docs" // This will be auto-generated
	"claims_assessment/internal/adapter/http/handlers"
	"claims_assessment/internal/adapter/persistence/repository"
	"claims_assessment/internal/infrastructure/audit"
	"claims_assessment/internal/infrastructure/database"
	"claims_assessment/internal/usecase"
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

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create audit logger: %v", err)
	}
	events := audit.NewZapSink(logger)

	assessmentRepo := repository.NewAssessmentDynamoRepository(ddb)
	frcRepo := repository.NewFRCDynamoRepository(ddb)
	estimateReader := repository.NewEstimateDynamoReader(ddb)
	additionalsReader := repository.NewAdditionalsDynamoReader(ddb)

	assessmentUseCase := usecase.NewAssessmentUseCase(assessmentRepo, events)
	frcUseCase := usecase.NewFRCUseCase(frcRepo, assessmentUseCase, estimateReader, additionalsReader, events)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase)
	frcHandler := handlers.NewFRCHandler(frcUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssessmentRoutes(v1, assessmentHandler, frcHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
