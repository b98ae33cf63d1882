package keyring

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Storage keys. The credential and the identity are only ever written, read
// and deleted together.
const (
	tokenKey    = "token"
	identityKey = "user"
)

// Credentials is the durable session state: the bearer token plus the raw
// identity record it belongs to.
type Credentials struct {
	Token    string
	Identity []byte
}

// Keyring is the durable client-side credential store: a SQLite vault whose
// values are sealed at rest.
type Keyring struct {
	db  *sql.DB
	box *sealer
}

// Open opens (creating if needed) the keyring database at dbPath and loads
// the sealing secret from secretPath.
func Open(dbPath, secretPath string) (*Keyring, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open keyring db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping keyring db: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	secret, err := loadOrCreateSecret(secretPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Keyring{db: db, box: &sealer{secret: secret}}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func (k *Keyring) Close() error {
	return k.db.Close()
}

// PutCredentials seals and stores the token and identity in one transaction
// so a reader never observes one without the other.
func (k *Keyring) PutCredentials(creds Credentials) error {
	sealedToken, err := k.box.seal([]byte(creds.Token))
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	sealedIdentity, err := k.box.seal(creds.Identity)
	if err != nil {
		return fmt.Errorf("seal identity: %w", err)
	}

	tx, err := k.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string][]byte{tokenKey: sealedToken, identityKey: sealedIdentity} {
		if _, err := tx.Exec(
			`INSERT INTO vault (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			key, value,
		); err != nil {
			return fmt.Errorf("upsert %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// PutIdentity replaces the stored identity while keeping the token. It is an
// error to call this when no credentials are stored.
func (k *Keyring) PutIdentity(identity []byte) error {
	sealed, err := k.box.seal(identity)
	if err != nil {
		return fmt.Errorf("seal identity: %w", err)
	}

	result, err := k.db.Exec(
		`UPDATE vault SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = ?`,
		sealed, identityKey,
	)
	if err != nil {
		return fmt.Errorf("update identity: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no stored credentials to update")
	}
	return nil
}

// Credentials returns the stored pair, or nil when either half is absent.
func (k *Keyring) Credentials() (*Credentials, error) {
	sealedToken, err := k.get(tokenKey)
	if err != nil {
		return nil, err
	}
	sealedIdentity, err := k.get(identityKey)
	if err != nil {
		return nil, err
	}
	if sealedToken == nil || sealedIdentity == nil {
		return nil, nil
	}

	token, err := k.box.open(sealedToken)
	if err != nil {
		return nil, fmt.Errorf("unseal token: %w", err)
	}
	identity, err := k.box.open(sealedIdentity)
	if err != nil {
		return nil, fmt.Errorf("unseal identity: %w", err)
	}

	return &Credentials{Token: string(token), Identity: identity}, nil
}

// DeleteCredentials removes both halves in one transaction. Deleting an
// empty keyring is a no-op.
func (k *Keyring) DeleteCredentials() error {
	tx, err := k.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vault WHERE key IN (?, ?)`, tokenKey, identityKey); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (k *Keyring) get(key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRow(`SELECT value FROM vault WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	return value, nil
}
