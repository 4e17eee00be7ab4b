package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"pawhaven/internal/config"
	"pawhaven/internal/domain"
)

type Service interface {
	SendAdoptionDecisionEmail(ctx context.Context, toEmail, fullName, petName string, status domain.AdoptionStatus, adminMessage string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var decisionTmpl = template.Must(template.New("decision").Parse(`
<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: {{.Color}};">{{.Title}}</h2>
  <p>Hi {{.Name}},</p>
  <p>Your adoption request for <strong>{{.PetName}}</strong> has been {{.Status}}.</p>
  {{if .AdminMessage}}<p>Message from our team: {{.AdminMessage}}</p>{{end}}
  <p>You can review your request at <a href="http://{{.Domain}}/adoptions">{{.Domain}}</a>.</p>
</div>`))

func (s *service) SendAdoptionDecisionEmail(ctx context.Context, toEmail, fullName, petName string, status domain.AdoptionStatus, adminMessage string) error {
	title := "Adoption Request Approved"
	color := "#10b981"
	if status == domain.AdoptionRejected {
		title = "Adoption Request Rejected"
		color = "#ef4444"
	}

	data := struct {
		Title        string
		Name         string
		PetName      string
		Status       string
		AdminMessage string
		Domain       string
		Color        string
	}{
		Title:        title,
		Name:         fullName,
		PetName:      petName,
		Status:       string(status),
		AdminMessage: adminMessage,
		Domain:       s.config.Domain,
		Color:        color,
	}

	var body bytes.Buffer
	if err := decisionTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("PawHaven <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: fmt.Sprintf("%s - PawHaven", title),
	}

	_, err := s.client.Emails.Send(params)
	return err
}
