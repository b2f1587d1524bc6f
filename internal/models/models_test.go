package models

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetAndVerifyPassword(t *testing.T) {
	user := &User{Username: "alice"}

	err := user.SetPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)

	t.Run("matching password verifies", func(t *testing.T) {
		assert.True(t, user.VerifyPassword("correct horse battery staple"))
	})

	t.Run("wrong password returns false", func(t *testing.T) {
		assert.False(t, user.VerifyPassword("correct horse battery stapler"))
		assert.False(t, user.VerifyPassword(""))
	})

	t.Run("empty hash never verifies", func(t *testing.T) {
		empty := &User{Username: "bob"}
		assert.False(t, empty.VerifyPassword("anything"))
	})
}

func TestUser_SetPassword_RehashesWithNewSalt(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("secret"))
	first := user.PasswordHash
	require.NoError(t, user.SetPassword("secret"))

	// Same plaintext, different salt, different hash.
	assert.NotEqual(t, first, user.PasswordHash)
	assert.True(t, user.VerifyPassword("secret"))
}

func TestUser_PasswordIsNotReadable(t *testing.T) {
	users := []*User{
		{},
		{Username: "alice"},
		{Username: "bob", PasswordHash: "$2a$10$something"},
	}

	for _, user := range users {
		plaintext, err := user.Password()
		assert.Empty(t, plaintext)
		assert.ErrorIs(t, err, ErrPasswordNotReadable)
	}
}

func TestUser_String(t *testing.T) {
	admin := &User{Username: "root", IsAdmin: true}
	assert.Equal(t, "<User root, is admin true>", admin.String())

	reader := &User{Username: "alice"}
	assert.Equal(t, "<User alice, is admin false>", reader.String())
}

func TestPost_VisibleAt(t *testing.T) {
	pubDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no pub_date means not visible", func(t *testing.T) {
		post := &Post{Title: "Draft"}
		assert.False(t, post.VisibleAt(time.Now()))
		assert.False(t, post.IsVisible())
	})

	t.Run("before pub_date", func(t *testing.T) {
		post := &Post{PubDate: sql.NullTime{Time: pubDate, Valid: true}}
		assert.False(t, post.VisibleAt(time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("after pub_date", func(t *testing.T) {
		post := &Post{PubDate: sql.NullTime{Time: pubDate, Valid: true}}
		assert.True(t, post.VisibleAt(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("exactly at pub_date", func(t *testing.T) {
		post := &Post{PubDate: sql.NullTime{Time: pubDate, Valid: true}}
		assert.True(t, post.VisibleAt(pubDate))
	})

	t.Run("becomes visible without a write", func(t *testing.T) {
		post := &Post{PubDate: sql.NullTime{Time: pubDate, Valid: true}}
		assert.False(t, post.VisibleAt(pubDate.Add(-time.Second)))
		assert.True(t, post.VisibleAt(pubDate.Add(time.Second)))
	})
}

func TestPost_IsVisible_PastPubDate(t *testing.T) {
	post := &Post{PubDate: sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}}
	assert.True(t, post.IsVisible())

	post.PubDate.Time = time.Now().Add(time.Hour)
	assert.False(t, post.IsVisible())
}

func TestStringRepresentations(t *testing.T) {
	post := &Post{Title: "Hello World"}
	assert.Equal(t, "<Entry for: Hello World>", post.String())

	page := &Page{Title: "About"}
	assert.Equal(t, "<About>", page.String())
}
