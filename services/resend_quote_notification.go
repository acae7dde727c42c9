package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/wilsonAa123/seriprint-pro/models"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
	client *http.Client
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "Cotizaciones <cotizaciones@seriprint.cl>" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

var resendClient *ResendClient

// GetResendClient returns the shared Resend client, creating it on first use
func GetResendClient() *ResendClient {
	if resendClient == nil {
		resendClient = NewResendClient()
	}
	return resendClient
}

// QuoteNotificationData holds data for a quote status email
type QuoteNotificationData struct {
	CustomerEmail string
	CustomerName  string
	QuoteNumber   string
	Status        string
}

// EmailContent is a rendered subject/body pair
type EmailContent struct {
	Subject string
	HTML    string
}

// QuoteEmailContent selects the template matching a quote status. An
// unrecognized status falls back to the "pendiente" template.
func QuoteEmailContent(status, customerName, quoteNumber string) EmailContent {
	switch status {
	case models.QuoteStatusAccepted:
		return EmailContent{
			Subject: fmt.Sprintf("✅ Cotización %s Aceptada", quoteNumber),
			HTML: fmt.Sprintf(`
        <h2>¡Buenas noticias, %s!</h2>
        <p>Tu cotización <strong>%s</strong> ha sido <strong>aceptada</strong>.</p>
        <p>Nos pondremos en contacto contigo pronto para coordinar los siguientes pasos.</p>
        <p>¡Gracias por confiar en nosotros!</p>
        <br>
        <p>Saludos cordiales,<br>El Equipo</p>
      `, customerName, quoteNumber),
		}
	case models.QuoteStatusRejected:
		return EmailContent{
			Subject: fmt.Sprintf("❌ Cotización %s - Actualización", quoteNumber),
			HTML: fmt.Sprintf(`
        <h2>Hola %s,</h2>
        <p>Lamentamos informarte que tu cotización <strong>%s</strong> no pudo ser procesada en este momento.</p>
        <p>Si tienes alguna pregunta o deseas realizar ajustes, no dudes en contactarnos.</p>
        <p>Estamos aquí para ayudarte.</p>
        <br>
        <p>Saludos cordiales,<br>El Equipo</p>
      `, customerName, quoteNumber),
		}
	case models.QuoteStatusSent:
		return EmailContent{
			Subject: fmt.Sprintf("🚚 Tu pedido %s está en camino", quoteNumber),
			HTML: fmt.Sprintf(`
        <h2>¡Excelentes noticias, %s!</h2>
        <p>Tu pedido correspondiente a la cotización <strong>%s</strong> ya ha sido <strong>enviado</strong>.</p>
        <p>Recibirás tu pedido pronto. Te notificaremos cuando esté cerca de tu ubicación.</p>
        <p>¡Gracias por tu paciencia!</p>
        <br>
        <p>Saludos cordiales,<br>El Equipo</p>
      `, customerName, quoteNumber),
		}
	case models.QuoteStatusConverted:
		return EmailContent{
			Subject: fmt.Sprintf("✨ Pedido %s Completado", quoteNumber),
			HTML: fmt.Sprintf(`
        <h2>¡Gracias %s!</h2>
        <p>Tu pedido <strong>%s</strong> ha sido completado exitosamente.</p>
        <p>Esperamos que estés satisfecho con tu compra. Si tienes algún comentario o necesitas soporte, estamos aquí para ayudarte.</p>
        <p>¡Esperamos volver a trabajar contigo pronto!</p>
        <br>
        <p>Saludos cordiales,<br>El Equipo</p>
      `, customerName, quoteNumber),
		}
	default:
		// pendiente and anything unknown
		return EmailContent{
			Subject: fmt.Sprintf("⏳ Cotización %s Recibida", quoteNumber),
			HTML: fmt.Sprintf(`
        <h2>Hola %s,</h2>
        <p>Hemos recibido tu cotización <strong>%s</strong> y está siendo revisada.</p>
        <p>Te contactaremos pronto con más información.</p>
        <br>
        <p>Saludos cordiales,<br>El Equipo</p>
      `, customerName, quoteNumber),
		}
	}
}

// SendQuoteNotification sends a status-change email to the quote's customer
func (r *ResendClient) SendQuoteNotification(data QuoteNotificationData) error {
	if data.CustomerEmail == "" {
		return fmt.Errorf("customer email is required")
	}

	content := QuoteEmailContent(data.Status, data.CustomerName, data.QuoteNumber)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": content.Subject,
		"html":    content.HTML,
	}

	if err := r.post(payload); err != nil {
		return err
	}

	log.Printf("[resend] quote notification sent to %s (quote=%s status=%s)", data.CustomerEmail, data.QuoteNumber, data.Status)
	return nil
}

// ContactMessageData holds data for a contact-form relay email
type ContactMessageData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SendContactMessage relays a storefront contact-form message to the business inbox
func (r *ResendClient) SendContactMessage(data ContactMessageData) error {
	to := os.Getenv("CONTACT_INBOX_EMAIL")
	if to == "" {
		to = "contacto@seriprint.cl"
	}

	payload := map[string]interface{}{
		"from":     r.from,
		"to":       to,
		"reply_to": data.Email,
		"subject":  fmt.Sprintf("📨 Nuevo mensaje de contacto de %s", data.Name),
		"html": fmt.Sprintf(`
        <h2>Nuevo mensaje desde el sitio</h2>
        <p><strong>Nombre:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Teléfono:</strong> %s</p>
        <p><strong>Mensaje:</strong></p>
        <p>%s</p>
      `, data.Name, data.Email, data.Phone, data.Message),
	}

	if err := r.post(payload); err != nil {
		return err
	}

	log.Printf("[resend] contact message relayed from %s", data.Email)
	return nil
}

// post marshals a payload and sends it to the Resend emails endpoint
func (r *ResendClient) post(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	return nil
}
