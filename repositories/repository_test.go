package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/twtrd/twtrd/models"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func seedUser(t *testing.T, repo *UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, PasswordHash: "x"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepositoryLookups(t *testing.T) {
	db := openTestDB(t, "repo_users")
	repo := NewUserRepository(db)

	created := seedUser(t, repo, "alice", "alice@example.com")

	byID, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserEmailUniqueIndex(t *testing.T) {
	db := openTestDB(t, "repo_unique")
	repo := NewUserRepository(db)

	seedUser(t, repo, "alice", "alice@example.com")
	err := repo.Create(&models.User{Username: "impostor", Email: "alice@example.com", PasswordHash: "x"})
	assert.Error(t, err)
}

func TestPostRepositoryOrderingAndPopulate(t *testing.T) {
	db := openTestDB(t, "repo_posts")
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	first := &models.Post{Text: "first", AuthorID: alice.ID}
	require.NoError(t, posts.Create(first))
	time.Sleep(5 * time.Millisecond)
	second := &models.Post{Text: "second", AuthorID: bob.ID}
	require.NoError(t, posts.Create(second))
	time.Sleep(5 * time.Millisecond)
	third := &models.Post{Text: "third", AuthorID: alice.ID}
	require.NoError(t, posts.Create(third))

	all, err := posts.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Text)
	assert.Equal(t, "second", all[1].Text)
	assert.Equal(t, "first", all[2].Text)
	assert.Equal(t, "alice", all[0].Author.Username)
	assert.Equal(t, "bob", all[1].Author.Username)

	mine, err := posts.ListByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "third", mine[0].Text)
	assert.Equal(t, "first", mine[1].Text)

	none, err := posts.ListByAuthor(bob.ID + 100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepositoryFindByID(t *testing.T) {
	db := openTestDB(t, "repo_post_find")
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := seedUser(t, users, "alice", "alice@example.com")
	post := &models.Post{Text: "hello", AuthorID: alice.ID}
	require.NoError(t, posts.Create(post))

	found, err := posts.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Text)
	assert.Equal(t, "alice", found.Author.Username)

	_, err = posts.FindByID(post.ID + 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
