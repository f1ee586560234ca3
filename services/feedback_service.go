package services

import (
	"fmt"
	"os"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"
	"github.com/PoojaSancheti/Low-PocEat/utils"
)

type FeedbackService struct {
	mailer utils.Mailer
}

func NewFeedbackService(m utils.Mailer) *FeedbackService {
	return &FeedbackService{mailer: m}
}

func supportEmail() string {
	if v := os.Getenv("SUPPORT_EMAIL"); v != "" {
		return v
	}
	return "support@example.com"
}

// Save persists a feedback row. Rows are append-only.
func (s *FeedbackService) Save(f *models.Feedback) error {
	return config.DB.Create(f).Error
}

// Notify sends the best-effort notification email about a saved feedback
// row. A failure here never rolls the row back.
func (s *FeedbackService) Notify(f *models.Feedback) error {
	subject := fmt.Sprintf("Contact Us Form Submission from %s", f.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nRating: %d\n\nMessage:\n%s",
		f.Name, f.Email, f.Rating, f.Message)
	return s.mailer.Send(supportEmail(), subject, body)
}

// SendContact forwards a contact-form message. Nothing is persisted.
func (s *FeedbackService) SendContact(name, email, message string) error {
	subject := fmt.Sprintf("Contact Us Form Submission from %s", name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)
	return s.mailer.Send(supportEmail(), subject, body)
}
