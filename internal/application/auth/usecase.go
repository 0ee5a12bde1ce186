package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
	"github.com/jhoicas/rasan-admin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

func (c JWTConfig) lifetime() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

// AuthUseCase login y logout de administradores contra Appwrite.
type AuthUseCase struct {
	accounts   ports.AccountService
	sessions   repository.SessionStore
	guard      *SessionGuard
	jwtCfg     JWTConfig
	adminLabel string
	log        zerolog.Logger
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. adminLabel es el label de Appwrite exigido.
func NewAuthUseCase(accounts ports.AccountService, sessions repository.SessionStore, jwtCfg JWTConfig, adminLabel string, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts:   accounts,
		sessions:   sessions,
		guard:      NewSessionGuard(jwtCfg.Secret, sessions),
		jwtCfg:     jwtCfg,
		adminLabel: adminLabel,
		log:        log,
		now:        time.Now,
	}
}

// Guard devuelve el guardián de rutas que comparte el almacén de sesiones.
func (uc *AuthUseCase) Guard() *SessionGuard {
	return uc.guard
}

// Login crea la sesión de Appwrite, exige el label de administrador y emite el token de la consola.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}

	secret, err := uc.accounts.CreateEmailPasswordSession(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.accounts.Get(ctx, secret)
	if err != nil {
		uc.revokeRemote(ctx, secret)
		return nil, err
	}
	if !user.HasLabel(uc.adminLabel) {
		uc.revokeRemote(ctx, secret)
		uc.log.Warn().Str("user_id", user.ID).Msg("login rechazado: la cuenta no es administradora")
		return nil, fmt.Errorf("%w: la cuenta no tiene acceso a la consola", domain.ErrForbidden)
	}

	now := uc.now()
	session := &entity.AdminSession{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		Email:          user.Email,
		Name:           user.Name,
		AppwriteSecret: secret,
		CreatedAt:      now,
		ExpiresAt:      now.Add(uc.jwtCfg.lifetime()),
	}
	if err := uc.sessions.Save(ctx, session, uc.jwtCfg.lifetime()); err != nil {
		uc.revokeRemote(ctx, secret)
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, session.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		uc.revokeRemote(ctx, secret)
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      ToAdminResponse(session),
	}, nil
}

// Logout cierra la sesión de Appwrite (best effort) y borra la sesión local.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	uc.revokeRemote(ctx, session.AppwriteSecret)
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *AuthUseCase) revokeRemote(ctx context.Context, secret string) {
	if err := uc.accounts.DeleteSessions(ctx, secret); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo cerrar la sesión en Appwrite")
	}
}

// ToAdminResponse datos públicos del administrador de la sesión.
func ToAdminResponse(s *entity.AdminSession) dto.AdminResponse {
	return dto.AdminResponse{ID: s.UserID, Name: s.Name, Email: s.Email}
}
