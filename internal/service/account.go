package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"complaint-tracker/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type passwordOwner struct {
	Name string
}

type AccountService struct {
	db   *gorm.DB
	cost int
	log  *zap.Logger
}

func NewAccountService(db *gorm.DB, cost int, log *zap.Logger) *AccountService {
	return &AccountService{db: db, cost: cost, log: log}
}

// Login looks up the account by the role's login column and checks the
// password. Accounts still holding a plaintext credential are rehashed
// after a successful login.
func (s *AccountService) Login(ctx context.Context, role models.UserRole, loginID, password string) (models.Account, error) {
	account := models.NewAccount(role)
	if account == nil {
		return nil, ErrUnknownRole
	}
	table := role.Credentials()

	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: table.LoginColumn}, Value: loginID}).
		Take(account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find %s account: %w", role, err)
	}

	ok, legacy := verifyPassword(account.StoredPassword(), password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if legacy {
		if err := s.rehash(ctx, table, loginID, account.StoredPassword(), password); err != nil {
			s.log.Warn("failed to upgrade plaintext credential",
				zap.String("role", role.String()), zap.Error(err))
		}
	}
	return account, nil
}

// ChangePassword overwrites the credential of the account identified by key
// and returns the account's display name.
func (s *AccountService) ChangePassword(ctx context.Context, role models.UserRole, key, newPassword string) (string, error) {
	if _, ok := models.ParseRole(role.String()); !ok {
		return "", ErrUnknownRole
	}
	hash, err := s.hash(newPassword)
	if err != nil {
		return "", err
	}

	t := role.Credentials()

	var updated passwordOwner
	res := s.db.WithContext(ctx).
		Raw("UPDATE ? SET ? = ? WHERE ? = ? RETURNING ? AS name",
			clause.Table{Name: t.Table},
			clause.Column{Name: "password"}, hash,
			clause.Column{Name: t.KeyColumn}, key,
			clause.Column{Name: t.NameColumn},
		).
		Scan(&updated)
	if res.Error != nil {
		return "", fmt.Errorf("update %s password: %w", role, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrUserNotFound
	}
	return updated.Name, nil
}

func (s *AccountService) hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrInvalidPassword
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// rehash replaces the plaintext credential only while it still holds the
// value that was just verified. A row changed in the meantime is left alone.
func (s *AccountService) rehash(ctx context.Context, t models.CredentialTable, loginID, stored, password string) error {
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Table(t.Table).
		Where(clause.Eq{Column: clause.Column{Name: t.LoginColumn}, Value: loginID}).
		Where(clause.Eq{Column: clause.Column{Name: "password"}, Value: stored}).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		s.log.Debug("credential changed before upgrade, skipping", zap.String("table", t.Table))
	}
	return nil
}

// verifyPassword compares supplied against a bcrypt hash, or against a
// legacy plaintext value when stored is not a hash.
func verifyPassword(stored, supplied string) (ok, legacy bool) {
	if supplied == "" || stored == "" {
		return false, false
	}
	if _, err := bcrypt.Cost([]byte(stored)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1, true
}
