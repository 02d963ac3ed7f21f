package main

import (
	"log"
	"net/http"
	"os"

	controller "github.com/kavyansh10/GraminSetu/controller"
	"github.com/kavyansh10/GraminSetu/initializers"
	middleware "github.com/kavyansh10/GraminSetu/middleware"
	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	if err := initializers.LoadEnv(); err != nil {
		log.Printf("No .env file found, relying on process environment: %s", err)
	}
	if err := initializers.ConnectDB(); err != nil {
		log.Fatalf("[CRITICAL] Failed to initialize database connection: %s", err)
	}
	if err := initializers.Migrate(); err != nil {
		log.Fatalf("[CRITICAL] Failed to run database migrations: %s", err)
	}
}

func main() {
	db := initializers.DB

	searchService := service.NewSearchService()
	taskService := service.NewTaskService(db)
	personService := service.NewPersonService(db, taskService, searchService)
	productService := service.NewProductService(db, taskService)
	interactionService := service.NewInteractionService(db, taskService)
	recordService := service.NewRecordService(db)
	reportService := service.NewReportService(db)
	userService := service.NewUserService(db)

	// Attachment storage is optional in local setups; the upload endpoint
	// answers 503 when it is not configured.
	attachmentService, err := service.NewAttachmentService()
	if err != nil {
		log.Printf("Attachment storage disabled: %s", err)
		attachmentService = nil
	}

	personController := controller.NewPersonController(personService)
	productController := controller.NewProductController(productService)
	interactionController := controller.NewInteractionController(interactionService)
	taskController := controller.NewTaskController(taskService)
	recordController := controller.NewRecordController(recordService)
	reportController := controller.NewReportController(reportService, searchService, attachmentService)
	userController := controller.NewUserController(userService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	router.Use(middleware.GlobalRateLimiter.Limit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Profile setup runs before a branch exists, so it only needs the token.
	auth := router.Group("/", middleware.RequireOfficer())
	auth.POST("/auth/profile", userController.UpsertProfile)
	auth.GET("/auth/profile", userController.GetProfile)

	// Everything else is branch-scoped.
	api := auth.Group("/", middleware.RequireBranch(userService))

	api.POST("/people", middleware.StrictRateLimiter.Limit(), personController.CreatePerson)
	api.GET("/people", personController.ListPeople)
	api.GET("/people/:id", personController.GetPerson)
	api.PUT("/people/:id", middleware.StrictRateLimiter.Limit(), personController.UpdatePerson)
	api.GET("/people/:id/household", personController.GetHousehold)
	api.PUT("/people/:id/household", personController.UpsertHousehold)
	api.GET("/people/:id/products", personController.ListPersonProducts)
	api.GET("/people/:id/interactions", personController.ListPersonInteractions)
	api.GET("/people/:id/tasks", taskController.ListPersonTasks)

	api.POST("/products", middleware.StrictRateLimiter.Limit(), productController.CreateProduct)
	api.GET("/products", productController.ListProducts)
	api.GET("/products/:id", productController.GetProduct)
	api.PUT("/products/:id", middleware.StrictRateLimiter.Limit(), productController.UpdateProduct)

	api.POST("/interactions", middleware.StrictRateLimiter.Limit(), interactionController.CreateInteraction)
	api.GET("/interactions", interactionController.ListInteractions)
	api.GET("/interactions/:id", interactionController.GetInteraction)
	api.PUT("/interactions/:id", middleware.StrictRateLimiter.Limit(), interactionController.UpdateInteraction)

	api.GET("/tasks", taskController.ListTasks)
	api.POST("/tasks", taskController.CreateTask)
	api.PUT("/tasks/:id/status", taskController.UpdateTaskStatus)

	api.POST("/opportunities", recordController.CreateOpportunity)
	api.GET("/opportunities", recordController.ListOpportunities)
	api.GET("/opportunities/:id", recordController.GetOpportunity)
	api.PUT("/opportunities/:id", recordController.UpdateOpportunity)

	api.POST("/meetings", recordController.CreateMeeting)
	api.GET("/meetings", recordController.ListMeetings)
	api.PUT("/meetings/:id", recordController.UpdateMeeting)

	api.POST("/phone-calls", recordController.CreatePhoneCall)
	api.GET("/phone-calls", recordController.ListPhoneCalls)
	api.PUT("/phone-calls/:id", recordController.UpdatePhoneCall)

	api.POST("/rfps", recordController.CreateRFP)
	api.GET("/rfps", recordController.ListRFPs)
	api.PUT("/rfps/:id", recordController.UpdateRFP)

	api.POST("/invoices", recordController.CreateInvoice)
	api.GET("/invoices", recordController.ListInvoices)
	api.PUT("/invoices/:id", recordController.UpdateInvoice)

	api.POST("/attachments", middleware.StrictRateLimiter.Limit(), reportController.UploadAttachment)
	api.GET("/search", reportController.SearchPeople)
	api.GET("/reports/summary", reportController.GetSummary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
