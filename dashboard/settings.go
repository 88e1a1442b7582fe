package dashboard

import (
	"context"
	"net/http"

	"github.com/nomad3/shopapi"
)

const settingsBase = "/api/settings"

// SettingsService reads and writes the storefront branding configuration.
type SettingsService struct {
	client *shopapi.Client
}

// Get returns the current store settings.
func (s *SettingsService) Get(ctx context.Context) (StoreSettings, error) {
	return shopapi.Fetch[StoreSettings](ctx, s.client, http.MethodGet, settingsBase, nil)
}

// Update replaces the store settings and returns the stored result.
func (s *SettingsService) Update(ctx context.Context, settings StoreSettings) (StoreSettings, error) {
	out, err := shopapi.Fetch[StoreSettings](ctx, s.client, http.MethodPut, settingsBase, settings)
	if err == nil {
		s.client.Invalidate(settingsBase)
	}
	return out, err
}
