package repository_test

import (
	"errors"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/repository"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/testutil"
)

func testFernetSecret(t *testing.T) string {
	t.Helper()
	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}

func TestSettingsRepository_Credentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo, err := repository.NewSettingsRepository(db, testFernetSecret(t))
	if err != nil {
		t.Fatalf("NewSettingsRepository failed: %v", err)
	}

	t.Run("round-trips an encrypted credential", func(t *testing.T) {
		if !repo.CanStoreCredentials() {
			t.Fatal("Expected credential storage to be enabled")
		}
		if err := repo.SaveCredential(repository.SettingAPIKey, "demo-key-123"); err != nil {
			t.Fatalf("SaveCredential failed: %v", err)
		}

		got, err := repo.LoadCredential(repository.SettingAPIKey)
		if err != nil {
			t.Fatalf("LoadCredential failed: %v", err)
		}
		if got != "demo-key-123" {
			t.Errorf("Expected demo-key-123, got %q", got)
		}
	})

	t.Run("value at rest is not plaintext", func(t *testing.T) {
		var stored string
		err := db.QueryRow(`SELECT value FROM app_setting WHERE key = ?`, repository.SettingAPIKey).Scan(&stored)
		if err != nil {
			t.Fatalf("Failed to read raw setting: %v", err)
		}
		if stored == "demo-key-123" {
			t.Error("Credential stored in plaintext")
		}
	})

	t.Run("upsert replaces the stored value", func(t *testing.T) {
		if err := repo.SaveCredential(repository.SettingAPIKey, "rotated-key"); err != nil {
			t.Fatalf("SaveCredential failed: %v", err)
		}
		got, err := repo.LoadCredential(repository.SettingAPIKey)
		if err != nil {
			t.Fatalf("LoadCredential failed: %v", err)
		}
		if got != "rotated-key" {
			t.Errorf("Expected rotated-key, got %q", got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.LoadCredential("never_stored")
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})
}

func TestSettingsRepository_WithoutSecret(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo, err := repository.NewSettingsRepository(db, "")
	if err != nil {
		t.Fatalf("NewSettingsRepository failed: %v", err)
	}

	if repo.CanStoreCredentials() {
		t.Error("Expected credential storage disabled without a secret")
	}
	if err := repo.SaveCredential(repository.SettingAPIKey, "x"); !errors.Is(err, apperrors.ErrEncryptionUnavailable) {
		t.Errorf("Expected ErrEncryptionUnavailable on save, got %v", err)
	}
	if _, err := repo.LoadCredential(repository.SettingAPIKey); !errors.Is(err, apperrors.ErrEncryptionUnavailable) {
		t.Errorf("Expected ErrEncryptionUnavailable on load, got %v", err)
	}
}

func TestNewSettingsRepository_BadSecret(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if _, err := repository.NewSettingsRepository(db, "not-a-fernet-key"); err == nil {
		t.Error("Expected an error for a malformed fernet secret")
	}
}
