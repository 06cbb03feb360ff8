package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
)

// SettingAPIKey is the app_setting key holding the upstream API credential.
const SettingAPIKey = "alpha_vantage_api_key"

// credentialMaxAge bounds fernet token age on decrypt. Stored credentials
// are long-lived, so this is effectively "no expiry" rather than a rotation
// policy.
const credentialMaxAge = 10 * 365 * 24 * time.Hour

// SettingsRepository provides data access for the app_setting table.
// Credential values are fernet-encrypted at rest; a repository without a
// fernet key can neither store nor read credentials.
type SettingsRepository struct {
	db     *sql.DB
	secret *fernet.Key
}

// NewSettingsRepository creates a new SettingsRepository. fernetSecret is a
// base64 fernet key or empty to disable credential storage.
func NewSettingsRepository(db *sql.DB, fernetSecret string) (*SettingsRepository, error) {
	r := &SettingsRepository{db: db}
	if fernetSecret != "" {
		key, err := fernet.DecodeKey(fernetSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet secret: %w", err)
		}
		r.secret = key
	}
	return r, nil
}

// CanStoreCredentials reports whether a fernet secret is configured.
func (r *SettingsRepository) CanStoreCredentials() bool {
	return r.secret != nil
}

// SaveCredential encrypts and upserts a credential value under key.
func (r *SettingsRepository) SaveCredential(key, value string) error {
	if r.secret == nil {
		return apperrors.ErrEncryptionUnavailable
	}

	token, err := fernet.EncryptAndSign([]byte(value), r.secret)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO app_setting (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(token), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// LoadCredential decrypts and returns the credential stored under key.
// Returns ErrSettingNotFound when the key has never been stored and
// ErrEncryptionUnavailable when no fernet secret is configured.
func (r *SettingsRepository) LoadCredential(key string) (string, error) {
	if r.secret == nil {
		return "", apperrors.ErrEncryptionUnavailable
	}

	var token string
	err := r.db.QueryRow(`SELECT value FROM app_setting WHERE key = ?`, key).Scan(&token)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load setting: %w", err)
	}

	plain := fernet.VerifyAndDecrypt([]byte(token), credentialMaxAge, []*fernet.Key{r.secret})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt setting %s", key)
	}
	return string(plain), nil
}
