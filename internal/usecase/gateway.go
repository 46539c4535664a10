package usecase

import "go-transfer-backend/pkg/email"

// NotificationGateway is the best-effort email capability invoked after a
// successful create. Send reports success as a bool and never propagates
// transport failures; pkg/email.Service implements it.
type NotificationGateway interface {
	IsConfigured() bool
	Send(opts email.SendOptions) bool
}
