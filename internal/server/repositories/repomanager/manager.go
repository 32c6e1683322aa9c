// Package repomanager hands out repositories bound to a database handle or
// an open transaction, and applies the server schema.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/chat"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/exercises"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/moods"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Moods(db dbx.DBTX) moods.Repository
	Exercises(db dbx.DBTX) exercises.Repository
	Chat(db dbx.DBTX) chat.Repository
}
