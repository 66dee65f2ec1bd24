package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asadullah-dev/portfolio-site-backend/config"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// NotifyContact emails the site owner about a new contact submission via
// the Resend API. Notification is best-effort: missing configuration or a
// failed send is logged and never surfaced to the submitter, who already
// got their success response. The submission itself is safe in the store.
//
// Requires RESEND_API_KEY, RESEND_FROM_EMAIL, and CONTACT_NOTIFY_EMAIL.
func NotifyContact(cfg map[string]string, message models.ContactMessage) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	notifyEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")

	if apiKey == "" || fromEmail == "" || notifyEmail == "" {
		log.Debug().Msg("Contact notification not configured, skipping")
		return
	}

	subject := fmt.Sprintf("New contact message from %s", message.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message)

	if err := sendEmail(apiKey, ResendEmailRequest{
		From:    fromEmail,
		To:      []string{notifyEmail},
		Subject: subject,
		Text:    body,
	}); err != nil {
		log.Error().Err(err).Int("messageId", message.ID).Msg("Failed to send contact notification")
	}
}

func sendEmail(apiKey string, payload ResendEmailRequest) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification email")
	}

	return nil
}
