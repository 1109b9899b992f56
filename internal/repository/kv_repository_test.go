package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

func TestKVRepositoryWithoutClient(t *testing.T) {
	repo := NewKVRepository(nil)
	ctx := context.Background()

	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Set(ctx, "k", "v", 0))

	var dest string
	err := repo.Get(ctx, "k", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Delete(ctx, "k"))
	assert.NoError(t, repo.Close())
}
