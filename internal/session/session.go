// Package session carrega a sessão autenticada de forma explícita pelo
// context.Context e notifica entradas e saídas através de um Broker.
package session

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Session struct {
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func (s Session) IsAdmin() bool {
	return s.Role == domain.RoleAdmin
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retorna a sessão da requisição, se houver
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// ActorEmail devolve o e-mail de quem executa a ação, usado na auditoria
func ActorEmail(ctx context.Context) string {
	if s, ok := FromContext(ctx); ok {
		return s.Email
	}
	return "sistema"
}
