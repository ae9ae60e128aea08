package csvstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "id,email,password,name,quizResults\n"

func createTestStore(t *testing.T, serialize bool) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "users.csv")

	return NewStore(path, serialize, slog.New(slog.DiscardHandler)), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	blob, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(blob)
}

func testUser(id, email string) *entity.User {
	return &entity.User{ID: id, Email: email, Password: "secret1", Name: "User " + id}
}

func TestStore_ReadAllInitializesMissingFile(t *testing.T) {
	store, path := createTestStore(t, false)

	users, err := store.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, header, readFile(t, path))
}

func TestStore_ReadAllHeaderOnly(t *testing.T) {
	store, path := createTestStore(t, false)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(header), 0o600))

	users, err := store.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestStore_ReadAllSkipsMalformedLines(t *testing.T) {
	store, path := createTestStore(t, false)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	blob := header +
		"u1,a@x.io,pw,Ann,\n" +
		",ghost@x.io,pw,Ghost,\n" +
		"\n" +
		"u2,b@x.io,pw,Bo,{\"personalityScores\":{\"openness\":\"o1\",\"neuroticism\":\"n2\"}}\n"
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	users, err := store.ReadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
	assert.Equal(t, `{"personalityScores":{"openness":"o1","neuroticism":"n2"}}`, users[1].QuizResults)
}

func TestStore_ReadAllUnreadableFile(t *testing.T) {
	store, path := createTestStore(t, false)
	// A directory where the file should be cannot be read as a table.
	require.NoError(t, os.MkdirAll(path, 0o750))

	_, err := store.ReadAll(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
}

func TestStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store, path := createTestStore(t, false)

	inserted, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	assert.Equal(t, "", inserted.QuizResults)

	byEmail, found, err := store.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inserted, byEmail)

	byID, found, err := store.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inserted, byID)

	_, found, err = store.FindByEmail(ctx, "A@X.IO")
	require.NoError(t, err)
	assert.False(t, found, "email match is case-sensitive")

	assert.Equal(t, header+"u1,a@x.io,secret1,User u1,\n", readFile(t, path))
}

func TestStore_InsertPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t, false)

	for i := range 3 {
		_, err := store.Insert(ctx, testUser(fmt.Sprintf("u%d", i), fmt.Sprintf("%d@x.io", i)))
		require.NoError(t, err)
	}

	users, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, fmt.Sprintf("u%d", i), u.ID)
	}
}

func TestStore_InsertDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store, path := createTestStore(t, false)
	_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	before := readFile(t, path)

	_, err = store.Insert(ctx, testUser("u2", "a@x.io"))

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	assert.Equal(t, before, readFile(t, path))
}

func TestStore_InsertRequiresID(t *testing.T) {
	store, _ := createTestStore(t, false)

	_, err := store.Insert(context.Background(), testUser("", "a@x.io"))

	assert.Error(t, err)
}

func TestStore_ReplaceMergesPatch(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t, false)
	_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, testUser("u2", "b@x.io"))
	require.NoError(t, err)

	quiz := `{"personalityScores":{"openness":"o1","conscientiousness":"c1"}}`
	updated, found, err := store.Replace(ctx, &entity.Patch{ID: "u1", QuizResults: &quiz})

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, &entity.User{ID: "u1", Email: "a@x.io", Password: "secret1", Name: "User u1", QuizResults: quiz}, updated)

	users, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, updated, users[0])
	assert.Equal(t, testUser("u2", "b@x.io"), users[1])
}

func TestStore_ReplaceUnknownID(t *testing.T) {
	ctx := context.Background()
	store, path := createTestStore(t, false)
	_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	before := readFile(t, path)

	name := "Nobody"
	updated, found, err := store.Replace(ctx, &entity.Patch{ID: "missing", Name: &name})

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, updated)
	assert.Equal(t, before, readFile(t, path))
}

func TestStore_ReplaceRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t, false)
	_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, testUser("u2", "b@x.io"))
	require.NoError(t, err)

	email := "a@x.io"
	_, _, err = store.Replace(ctx, &entity.Patch{ID: "u2", Email: &email})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestStore_AbortedCommitKeepsPreviousTable(t *testing.T) {
	ctx := context.Background()
	store, path := createTestStore(t, false)
	_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)
	before := readFile(t, path)

	store.beforeRename = func(tmpPath string) error {
		assert.FileExists(t, tmpPath)

		return errors.New("disk full")
	}

	_, err = store.Insert(ctx, testUser("u2", "b@x.io"))
	assert.True(t, errors.Is(err, domainerrors.ErrStorageWriteFailed))

	name := "Renamed"
	_, _, err = store.Replace(ctx, &entity.Patch{ID: "u1", Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrStorageWriteFailed))

	assert.Equal(t, before, readFile(t, path))
	leftovers, err := filepath.Glob(path + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_UnserializedWritesLoseUpdates(t *testing.T) {
	ctx := context.Background()
	first, path := createTestStore(t, false)
	second := NewStore(path, false, slog.New(slog.DiscardHandler))

	_, err := first.Insert(ctx, testUser("u1", "a@x.io"))
	require.NoError(t, err)

	// The second writer commits between the first writer's read and its rename.
	var once sync.Once
	first.beforeRename = func(string) error {
		once.Do(func() {
			_, err := second.Insert(ctx, testUser("u2", "b@x.io"))
			require.NoError(t, err)
		})

		return nil
	}

	_, err = first.Insert(ctx, testUser("u3", "c@x.io"))
	require.NoError(t, err)

	users, err := first.ReadAll(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u1", "u3"}, ids, "u2 is overwritten by the later rename")
	assert.Equal(t, header+"u1,a@x.io,secret1,User u1,\nu3,c@x.io,secret1,User u3,\n", readFile(t, path))
}

func TestStore_SerializedWritesKeepEveryUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t, true)
	const writers = 20

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, testUser(fmt.Sprintf("u%d", i), fmt.Sprintf("%d@x.io", i)))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	users, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, writers)
}

func TestStore_InitializeKeepsConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	store, path := createTestStore(t, true)

	// The insert commits after the reader found no file but before it publishes the header.
	// The hook fires again inside the insert's own commits, hence the flag.
	inserted := false
	store.beforeRename = func(string) error {
		if inserted {
			return nil
		}
		inserted = true
		_, err := store.Insert(ctx, testUser("u1", "a@x.io"))
		require.NoError(t, err)

		return nil
	}

	users, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	users, err = store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, header+"u1,a@x.io,secret1,User u1,\n", readFile(t, path))

	leftovers, err := filepath.Glob(path + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
