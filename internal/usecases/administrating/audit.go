package administrating

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/session"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const auditListLimit = 100

func (s *Service) ListAuditLogs(ctx context.Context) ([]*domain.AuditLog, error) {
	logs, err := s.auditLogs.ListRecent(ctx, auditListLimit)
	if err != nil {
		return nil, databaseError(err)
	}
	return logs, nil
}

// WatchSessions grava login e logout na auditoria até o contexto acabar ou o
// canal ser fechado. O canal vem de session.Broker.Subscribe.
func (s *Service) WatchSessions(ctx context.Context, events <-chan session.Event) {
	logger := log.Component(ctx, component)
	logger.Info("admin: acompanhando eventos de sessão")

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				logger.Info("admin: canal de sessões encerrado")
				return
			}
			s.recordSessionEvent(ctx, event)
		}
	}
}

func (s *Service) recordSessionEvent(ctx context.Context, event session.Event) {
	switch event.Type {
	case session.EventSignedIn:
		s.record(ctx, event.Session.Email, domain.AuditActionSignIn,
			fmt.Sprintf("Login de %s", event.Session.Email))
	case session.EventSignedOut:
		s.record(ctx, event.Session.Email, domain.AuditActionSignOut,
			fmt.Sprintf("Logout de %s", event.Session.Email))
	}
}
