package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/pkg/jwt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTwoFactorRequired      = errors.New("two-factor authentication required")
	ErrTwoFactorNotConfigured = errors.New("two-factor authentication not configured")
	ErrInvalidTwoFactor       = errors.New("invalid PIN or verification code")
	ErrUserNotFound           = errors.New("user not found")
	ErrNotAdministrador       = errors.New("only administrators can use two-factor authentication")
)

const totpIssuer = "Clinica Dental"

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LoginWith2FA(ctx context.Context, req *dto.Login2FARequest) (*dto.TokenResponse, error)
	ExtendSession(ctx context.Context, claims *jwt.Claims) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uint, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	Setup2FA(ctx context.Context, userID uint, req *dto.Setup2FARequest) (*dto.Setup2FAResponse, error)
	Confirm2FA(ctx context.Context, userID uint, req *dto.Confirm2FARequest) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	usuarioRepo  repository.UsuarioRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	usuarioRepo repository.UsuarioRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		usuarioRepo:  usuarioRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

// Login authenticates with email and password. Administrators with
// two-factor fully enabled must use LoginWith2FA instead; all other
// roles authenticate here.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.usuarioRepo.FindActiveByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsAdministrador() && user.TwoFactorEnabled {
		return nil, ErrTwoFactorRequired
	}

	tokens, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	u.auditService.Log(ctx, u.db, &userID, entity.AccionLogin, entity.JSON{"email": user.Email})

	return tokens, nil
}

// LoginWith2FA requires password, PIN and a current TOTP code. All
// factors must pass before a token is issued.
func (u *authUsecase) LoginWith2FA(ctx context.Context, req *dto.Login2FARequest) (*dto.TokenResponse, error) {
	user, err := u.usuarioRepo.FindActiveByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.TwoFactorEnabled || user.TOTPSecret == "" || user.AdminPIN == "" {
		return nil, ErrTwoFactorNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.AdminPIN), []byte(req.PIN)); err != nil {
		return nil, ErrInvalidTwoFactor
	}

	if !validateTOTP(user.TOTPSecret, req.TOTPCode) {
		return nil, ErrInvalidTwoFactor
	}

	tokens, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	u.auditService.Log(ctx, u.db, &userID, entity.AccionLogin2FA, entity.JSON{"email": user.Email})

	return tokens, nil
}

// ExtendSession reissues a full-length token from still-valid claims
// and revokes the old token ID. The remaining validity of the original
// token is irrelevant; only an already invalid token is rejected, and
// that happens before this is reached.
func (u *authUsecase) ExtendSession(ctx context.Context, claims *jwt.Claims) (*dto.TokenResponse, error) {
	user, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, ErrUserNotFound
	}

	oldKey := fmt.Sprintf("access_token:%d:%s", claims.UserID, claims.TokenID)
	if err := u.redisClient.Del(ctx, oldKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke previous token: %+v", err)
	}

	tokens, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	u.auditService.Log(ctx, u.db, &userID, entity.AccionSesionExtendida, nil)

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uint, tokenID string) error {
	key := fmt.Sprintf("access_token:%d:%s", userID, tokenID)
	if err := u.redisClient.Del(ctx, key).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, &userID, entity.AccionLogout, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UsuarioToResponse(user), nil
}

// Setup2FA generates an unconfirmed TOTP secret and QR code for an
// administrator, and stores the bcrypt-hashed PIN. two_factor_enabled
// stays false until Confirm2FA proves the client can produce codes.
func (u *authUsecase) Setup2FA(ctx context.Context, userID uint, req *dto.Setup2FARequest) (*dto.Setup2FAResponse, error) {
	user, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsAdministrador() {
		return nil, ErrNotAdministrador
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		u.log.Warnf("Failed to generate TOTP secret: %+v", err)
		return nil, err
	}

	hashedPIN, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash PIN: %+v", err)
		return nil, err
	}

	user.TOTPSecret = key.Secret()
	user.AdminPIN = string(hashedPIN)
	user.TwoFactorEnabled = false

	if err := u.usuarioRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to store 2FA setup: %+v", err)
		return nil, err
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		u.log.Warnf("Failed to render provisioning QR: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db, &userID, entity.Accion2FASetup, nil)

	return &dto.Setup2FAResponse{
		Secret:     key.Secret(),
		OtpauthURL: key.URL(),
		QRCodePNG:  base64.StdEncoding.EncodeToString(png),
	}, nil
}

// Confirm2FA verifies the PIN and a live TOTP code, then flips
// two_factor_enabled on.
func (u *authUsecase) Confirm2FA(ctx context.Context, userID uint, req *dto.Confirm2FARequest) error {
	user, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.TOTPSecret == "" || user.AdminPIN == "" {
		return ErrTwoFactorNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.AdminPIN), []byte(req.PIN)); err != nil {
		return ErrInvalidTwoFactor
	}

	if !validateTOTP(user.TOTPSecret, req.TOTPCode) {
		return ErrInvalidTwoFactor
	}

	user.TwoFactorEnabled = true
	if err := u.usuarioRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to enable 2FA: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, &userID, entity.Accion2FAConfirmado, nil)
	return nil
}

func (u *authUsecase) issueToken(ctx context.Context, user *entity.Usuario) (*dto.TokenResponse, error) {
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, user.Rol, user.NombreCompleto())
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	key := fmt.Sprintf("access_token:%d:%s", user.ID, tokenID)
	if err := u.redisClient.Set(ctx, key, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:      converter.UsuarioToResponse(user),
	}, nil
}

// validateTOTP accepts codes within a ±2-step window to absorb clock
// drift between server and authenticator app.
func validateTOTP(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      2,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

