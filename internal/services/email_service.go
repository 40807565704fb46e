package services

import (
	"fmt"

	"aurum_backend/internal/email"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services/dto"
)

type EmailService interface {
	// SendOrderConfirmation mails the customer a summary of the order just
	// placed. lines are the cart lines the order was built from.
	SendOrderConfirmation(user *models.User, order *models.Order, lines []models.CartItem) error
	// SendContactForm forwards a contact form submission to the shop mailbox.
	SendContactForm(req *dto.ContactFormRequest) error
}

type emailService struct {
	provider     email.Provider
	contactEmail string
}

func NewEmailService(provider email.Provider, contactEmail string) EmailService {
	return &emailService{
		provider:     provider,
		contactEmail: contactEmail,
	}
}

func (s *emailService) SendOrderConfirmation(user *models.User, order *models.Order, lines []models.CartItem) error {
	type lineData struct {
		Name     string
		Quantity int
		Price    string
	}
	items := make([]lineData, 0, len(lines))
	for i := range lines {
		line := &lines[i]
		items = append(items, lineData{
			Name:     line.JewelryItem.Name,
			Quantity: line.Quantity,
			Price:    line.JewelryItem.Price.StringFixed(2),
		})
	}

	data := email.TemplateData{
		"name":       user.Name,
		"order_id":   order.ID,
		"order_date": order.CreatedAt.Format("January 2, 2006"),
		"items":      items,
		"total":      order.TotalAmount.StringFixed(2),
	}

	return s.provider.SendWithTemplate(email.TemplateOrderConfirmation, data, &email.Email{
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Order confirmation %s", order.ID),
	})
}

func (s *emailService) SendContactForm(req *dto.ContactFormRequest) error {
	data := email.TemplateData{
		"full_name": req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"subject":   req.Subject,
		"message":   req.Message,
	}

	return s.provider.SendWithTemplate(email.TemplateContactForm, data, &email.Email{
		To:      []string{s.contactEmail},
		Subject: fmt.Sprintf("Contact form: %s", req.Subject),
	})
}
