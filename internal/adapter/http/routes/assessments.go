package routes

import (
	"github.com/gin-gonic/gin"

	"claims_assessment/internal/adapter/http/handlers"
)

const (
	PathAssessments = "/assessments"
	PathFRC         = "/frc"
)

func addAssessmentRoutes(rg *gin.RouterGroup, assessmentHandler *handlers.AssessmentHandler, frcHandler *handlers.FRCHandler) {
	assessments := rg.Group(PathAssessments)
	{
		assessments.POST("", assessmentHandler.CreateAssessment)
		assessments.GET("/:id", assessmentHandler.GetAssessment)
		assessments.POST("/:id/transitions", assessmentHandler.AttemptTransition)
		assessments.POST("/:id/appointment", assessmentHandler.ScheduleAppointment)
		assessments.POST("/:id/frc", frcHandler.StartFRC)
	}

	frc := rg.Group(PathFRC)
	{
		frc.GET("/:id", frcHandler.GetFRC)
		frc.POST("/:id/merge", frcHandler.MergeSnapshot)
		frc.POST("/:id/complete", frcHandler.CompleteFRC)
		frc.POST("/:id/reopen", frcHandler.ReopenFRC)
		frc.POST("/:id/lines/:fingerprint/decision", frcHandler.UpdateLineDecision)
		frc.GET("/:id/totals", frcHandler.GetTotals)
	}
}
