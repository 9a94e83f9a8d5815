package session

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/config"
)

// Session data keys
const (
	KeyFlash      = "flash"
	KeyFlashLevel = "flash_level"
)

// Flash levels understood by the layout template.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Manager wraps scs.SessionManager with the flash helpers the UI needs.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager storing sessions in the given
// database. The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "catalog_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode // Lax so the 303 after a form post keeps the cookie
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// Flash stores a success message shown on the next rendered page.
func (m *Manager) Flash(c *gin.Context, message string) {
	m.FlashLevel(c, FlashSuccess, message)
}

func (m *Manager) FlashLevel(c *gin.Context, level, message string) {
	ctx := c.Request.Context()
	m.Put(ctx, KeyFlash, message)
	m.Put(ctx, KeyFlashLevel, level)
}

// PopFlash returns and clears the pending flash message, if any.
func (m *Manager) PopFlash(c *gin.Context) (level, message string) {
	ctx := c.Request.Context()
	message = m.PopString(ctx, KeyFlash)
	level = m.PopString(ctx, KeyFlashLevel)
	if level == "" {
		level = FlashSuccess
	}
	return level, message
}
