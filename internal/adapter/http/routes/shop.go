package routes

import (
	"net/http"

	"reparotec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs     = "/jobs"
	PathQuotes   = "/quotes"
	PathInvoices = "/invoices"
	PathPublic   = "/public"
)

func addShopRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, quoteHandler *handlers.QuoteHandler, invoiceHandler *handlers.InvoiceHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/attention", jobHandler.ListNeedingAttention)
		jobs.GET("/by-number/:job_number", jobHandler.GetJobByNumber)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id/status", jobHandler.ChangeStatus)
		jobs.GET("/:job_id/history", jobHandler.ListHistory)
		jobs.GET("/:job_id/quotes", quoteHandler.ListQuotesByJob)
		jobs.GET("/:job_id/invoice", invoiceHandler.GetInvoiceByJob)
	}

	rg.GET("/customers/:customer_id/jobs", jobHandler.ListJobsByCustomer)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.IssueQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/response", quoteHandler.RecordResponse)
		quotes.POST("/:quote_id/reminder", quoteHandler.SendReminder)
		quotes.POST("/:quote_id/convert", quoteHandler.ConvertToInvoice)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:invoice_id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:invoice_id", invoiceHandler.DeleteInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.ApplyPayment)
		invoices.GET("/:invoice_id/payments", invoiceHandler.ListPayments)
	}
}

// addPublicRoutes mounts the unauthenticated customer surface: the intake
// form submission and the accept/reject links embedded in quote email.
func addPublicRoutes(rg *gin.RouterGroup, publicHandler *handlers.PublicHandler, quoteHandler *handlers.QuoteHandler) {
	public := rg.Group(PathPublic)
	{
		public.POST("/intake", publicHandler.SubmitIntake)
		public.GET("/quotes/:quote_id/accept", quoteHandler.AcceptQuotePublic)
		public.GET("/quotes/:quote_id/reject", quoteHandler.RejectQuotePublic)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
