package usecase

import (
	"context"
	"errors"
	"fmt"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/pkg/mysqlerr"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken     = errors.New("El correo ya está registrado")
	ErrUsuarioNotFound = errors.New("Usuario no encontrado")
	ErrSelfDeactivate  = errors.New("No puedes desactivar tu propia cuenta")
)

type UsuarioAdminUsecase interface {
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UserResponse, error)
	List(ctx context.Context, page, limit int) (*dto.UsuarioListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUsuarioRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, actorID, id uint) error
}

type usuarioAdminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	usuarioRepo  repository.UsuarioRepository
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewUsuarioAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	usuarioRepo repository.UsuarioRepository,
	redisClient *redis.Client,
	auditService service.AuditService,
) UsuarioAdminUsecase {
	return &usuarioAdminUsecase{
		db:           db,
		log:          log,
		usuarioRepo:  usuarioRepo,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *usuarioAdminUsecase) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UserResponse, error) {
	existing, err := u.usuarioRepo.FindActiveByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	usuario := &entity.Usuario{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Password:  string(hashed),
		Rol:       req.Rol,
		Activo:    true,
	}

	if err := u.usuarioRepo.Create(u.db.WithContext(ctx), usuario); err != nil {
		u.log.Warnf("Failed to create usuario: %+v", err)
		return nil, err
	}

	actorID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, actorID, entity.AccionUsuarioCrear, entity.JSON{
		"usuario_id": usuario.ID,
		"rol":        usuario.Rol,
	})

	return converter.UsuarioToResponse(usuario), nil
}

func (u *usuarioAdminUsecase) List(ctx context.Context, page, limit int) (*dto.UsuarioListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	usuarios, total, err := u.usuarioRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list usuarios: %+v", err)
		return nil, err
	}

	return &dto.UsuarioListResponse{
		Usuarios: converter.UsuariosToResponses(usuarios),
		Total:    total,
	}, nil
}

func (u *usuarioAdminUsecase) Update(ctx context.Context, id uint, req *dto.UpdateUsuarioRequest) (*dto.UserResponse, error) {
	usuario, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find usuario %d: %+v", id, err)
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioNotFound
	}

	usuario.Nombre = req.Nombre
	usuario.Apellidos = req.Apellidos
	usuario.Email = req.Email
	usuario.Rol = req.Rol
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		usuario.Password = string(hashed)
	}

	if err := u.usuarioRepo.Update(u.db.WithContext(ctx), usuario); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		u.log.Warnf("Failed to update usuario %d: %+v", id, err)
		return nil, err
	}

	actorID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, actorID, entity.AccionUsuarioActualizar, entity.JSON{"usuario_id": id})

	return converter.UsuarioToResponse(usuario), nil
}

// Deactivate soft-disables the account and revokes every live session
// token, so a disabled user is locked out immediately rather than at
// token expiry.
func (u *usuarioAdminUsecase) Deactivate(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return ErrSelfDeactivate
	}

	affected, err := u.usuarioRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate usuario %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrUsuarioNotFound
	}

	pattern := fmt.Sprintf("access_token:%d:*", id)
	keys, err := u.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		u.log.Warnf("Failed to list tokens for usuario %d: %+v", id, err)
	} else if len(keys) > 0 {
		if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
			u.log.Warnf("Failed to revoke tokens for usuario %d: %+v", id, err)
		}
	}

	u.auditService.Log(ctx, u.db, &actorID, entity.AccionUsuarioDesactivar, entity.JSON{"usuario_id": id})
	return nil
}
