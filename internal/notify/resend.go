package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier sends email notifications via Resend API
type ResendNotifier struct {
	client      *resend.Client
	fromAddress string
	toAddress   string
}

// NewResendNotifier creates a new Resend email notifier
func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	if apiKey == "" {
		return nil
	}
	return &ResendNotifier{
		client:      resend.NewClient(apiKey),
		fromAddress: from,
		toAddress:   to,
	}
}

// IsConfigured returns true if the notifier has server-side config
func (r *ResendNotifier) IsConfigured() bool {
	return r.client != nil && r.fromAddress != "" && r.toAddress != ""
}

// Send emails the operator request to the configured staff address
func (r *ResendNotifier) Send(ctx context.Context, req OperatorRequest) error {
	if !r.IsConfigured() {
		return fmt.Errorf("resend notifier not configured")
	}

	params := &resend.SendEmailRequest{
		From:    r.fromAddress,
		To:      []string{r.toAddress},
		Subject: "Richiesta operatore dal chatbot",
		Html:    r.formatEmailHTML(req),
	}

	_, err := r.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	fmt.Printf("Operator request email sent to %s\n", r.toAddress)
	return nil
}

// Name returns the notifier name
func (r *ResendNotifier) Name() string {
	return "resend"
}

// formatEmailHTML creates the HTML email body
func (r *ResendNotifier) formatEmailHTML(req OperatorRequest) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: white; border-radius: 8px; padding: 24px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
    <h2 style="margin: 0 0 16px 0; color: #333;">Un utente ha chiesto di parlare con un operatore</h2>

    <div style="background: #f8f9fa; padding: 16px; border-radius: 8px; margin: 16px 0; border-left: 4px solid #007bff;">
      <p style="margin: 8px 0;"><strong>Messaggio:</strong> %s</p>
      <p style="margin: 8px 0;"><strong>Ricevuto:</strong> %s</p>
    </div>

    <hr style="margin-top: 32px; border: none; border-top: 1px solid #eee;">
    <p style="color: #999; font-size: 12px; margin-top: 16px;">
      Assistente E-Labo
    </p>
  </div>
</body>
</html>`,
		req.Message,
		req.ReceivedAt.Format("02/01/2006 15:04"),
	)
}
