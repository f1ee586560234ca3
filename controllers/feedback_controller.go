package controllers

import (
	"fmt"
	"net/http"

	"github.com/PoojaSancheti/Low-PocEat/models"
	"github.com/PoojaSancheti/Low-PocEat/services"
	"github.com/PoojaSancheti/Low-PocEat/validation"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Svc *services.FeedbackService
}

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Svc: svc}
}

type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// SubmitFeedback persists the row first and only then attempts the
// notification email. An email failure is reported to the caller even
// though the row is already saved; the response says so.
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if v := validation.ValidateFeedback(input.Name, input.Email, input.Message, input.Rating); !v.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": v})
		return
	}

	feedback := models.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Rating:  input.Rating,
	}
	if err := f.Svc.Save(&feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := f.Svc.Notify(&feedback); err != nil {
		c.String(http.StatusBadGateway,
			fmt.Sprintf("Error: your feedback was recorded but the notification email failed: %v", err))
		return
	}

	c.String(http.StatusOK, "Your message has been sent successfully. We'll get back to you shortly.")
}

// Presence checks ride on the transport layer here: binding:"required"
// is the only validation the contact form gets.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (f *FeedbackController) ContactUs(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid request.")
		return
	}

	if err := f.Svc.SendContact(input.Name, input.Email, input.Message); err != nil {
		c.String(http.StatusBadGateway, fmt.Sprintf("Error: %v", err))
		return
	}

	c.String(http.StatusOK, "Your message has been sent successfully. We'll get back to you shortly.")
}
