package service

import (
	"fmt"
	"strings"

	"codestreak_backend/internal/config"
	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"
	"codestreak_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 管理员登录。凭据校验走 bcrypt 哈希比对，
// 账号表为空时从配置的种子账号初始化（配置里只放哈希）。
type AuthService struct {
	Admins AdminStore
	Cfg    *config.Config
}

func NewAuthService(admins AdminStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Admins: admins,
		Cfg:    cfg,
	}
}

// AdminLogin 校验通过后签发 JWT
func (s *AuthService) AdminLogin(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", util.ErrInvalidArgument)
	}

	admin, err := s.Admins.FindByEmail(email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateAdminJWT(admin.ID, admin.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// SeedAdmins 首次启动时写入配置里的管理员账号
func (s *AuthService) SeedAdmins() error {
	count, err := s.Admins.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, account := range s.Cfg.Admin.Accounts {
		if account.Email == "" || account.PasswordHash == "" {
			logger.Log.Warn("skipping admin seed account with missing fields",
				zap.String("email", account.Email))
			continue
		}
		if err := s.Admins.Create(&model.AdminUser{
			Email:        account.Email,
			PasswordHash: account.PasswordHash,
		}); err != nil {
			return err
		}
	}
	return nil
}
