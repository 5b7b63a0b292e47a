package repository_test

import (
	"testing"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...), "migrate test db")
	return db
}

type fixture struct {
	user                     model.User
	board                    model.Board
	backlog, nextUp, working model.Column
}

func seedBoard(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		user: model.User{Email: "owner@example.com", HashedPassword: "x", Name: "Owner"},
	}
	require.NoError(t, db.Create(&f.user).Error)

	f.board = model.Board{Title: "Board", OwnerID: f.user.ID}
	require.NoError(t, db.Create(&f.board).Error)

	f.backlog = model.Column{BoardID: f.board.ID, Title: "Backlog", Position: 1}
	f.nextUp = model.Column{BoardID: f.board.ID, Title: "Next Up", Position: 2}
	f.working = model.Column{BoardID: f.board.ID, Title: "Working On", Position: 3}
	for _, col := range []*model.Column{&f.backlog, &f.nextUp, &f.working} {
		require.NoError(t, db.Create(col).Error)
	}
	return f
}

func seedTask(t *testing.T, db *gorm.DB, f fixture, title string, column model.Column, position int, dependsOn *model.Task) model.Task {
	t.Helper()
	task := model.Task{
		ColumnID:  column.ID,
		Title:     title,
		CreatedBy: f.user.ID,
		Position:  position,
	}
	if dependsOn != nil {
		id := dependsOn.ID
		task.DependsOn = &id
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func placement(t *testing.T, db *gorm.DB, id uuid.UUID) (uuid.UUID, int) {
	t.Helper()
	var task model.Task
	require.NoError(t, db.First(&task, "id = ?", id).Error)
	return task.ColumnID, task.Position
}
