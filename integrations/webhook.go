// ABOUTME: Webhook adapter: data arrives by push, so every pull fails
// ABOUTME: TestConnection only checks that a webhook URL is configured
package integrations

import (
	"context"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

type WebhookAdapter struct {
	cfg settings.WebhookConfig
}

func NewWebhookAdapter(cfg settings.WebhookConfig) *WebhookAdapter {
	return &WebhookAdapter{cfg: cfg}
}

func (a *WebhookAdapter) adapter() {}

func (a *WebhookAdapter) Platform() models.Platform { return models.PlatformWebhook }

func (a *WebhookAdapter) receiveOnly() error {
	return &ReceiveOnlyError{Platform: models.PlatformWebhook}
}

func (a *WebhookAdapter) FetchContacts(context.Context) ([]models.Contact, error) {
	return nil, a.receiveOnly()
}

func (a *WebhookAdapter) FetchDeals(context.Context) ([]models.Deal, error) {
	return nil, a.receiveOnly()
}

func (a *WebhookAdapter) FetchActivities(context.Context) ([]models.Activity, error) {
	return nil, a.receiveOnly()
}

func (a *WebhookAdapter) FetchCompanies(context.Context) ([]models.Company, error) {
	return nil, a.receiveOnly()
}

// TestConnection makes no request.
func (a *WebhookAdapter) TestConnection(context.Context) (bool, error) {
	if a.cfg.IncomingURL == "" && a.cfg.OutgoingURL == "" {
		return false, &ConfigError{Platform: models.PlatformWebhook, Field: "incomingUrl", Message: "Webhook URL belum diisi."}
	}
	return true, nil
}
