package verticals

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/martgen/internal/domain"
)

func newProvider(t *testing.T) (*Provider, *MockStore) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	rng := rand.New(rand.NewSource(42))
	return New(store, rng, gofakeit.NewCustom(rng)), store
}

func TestObtainUsesPersistedState(t *testing.T) {
	provider, store := newProvider(t)
	persisted := []domain.Vertical{
		{ID: "id-1", Name: "Electronics", Description: "d", Status: domain.StatusActive},
		{ID: "id-2", Name: "Books", Description: "d", Status: domain.StatusInactive},
	}
	store.EXPECT().Load().Return(persisted, true, nil)

	got, err := provider.Obtain(10)

	assert.NoError(t, err)
	assert.Equal(t, persisted, got, "persisted verticals must be returned unchanged")
}

func TestObtainGeneratesAndSaves(t *testing.T) {
	provider, store := newProvider(t)
	store.EXPECT().Load().Return(nil, false, nil)

	var saved []domain.Vertical
	store.EXPECT().Save(gomock.Any()).DoAndReturn(func(vs []domain.Vertical) error {
		saved = vs
		return nil
	})

	got, err := provider.Obtain(10)

	assert.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, saved, got, "saved set must match the returned set")

	seen := map[string]bool{}
	for i, v := range got {
		assert.NotEmpty(t, v.ID)
		assert.False(t, seen[v.ID], "duplicate vertical id")
		seen[v.ID] = true
		assert.Equal(t, Names[i], v.Name)
		assert.Contains(t, []string{domain.StatusActive, domain.StatusInactive, domain.StatusDeleted}, v.Status)
	}
}

func TestObtainCountOutOfRangeUsesAllNames(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "zero", count: 0},
		{name: "negative", count: -3},
		{name: "above name list", count: len(Names) + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, store := newProvider(t)
			store.EXPECT().Load().Return(nil, false, nil)
			store.EXPECT().Save(gomock.Any()).Return(nil)

			got, err := provider.Obtain(tt.count)

			assert.NoError(t, err)
			assert.Len(t, got, len(Names))
		})
	}
}

func TestObtainLoadError(t *testing.T) {
	provider, store := newProvider(t)
	store.EXPECT().Load().Return(nil, false, ErrMalformed)

	got, err := provider.Obtain(10)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestObtainSaveError(t *testing.T) {
	provider, store := newProvider(t)
	store.EXPECT().Load().Return(nil, false, nil)
	store.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	got, err := provider.Obtain(10)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestObtainDeterministic(t *testing.T) {
	run := func() []domain.Vertical {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockStore(ctrl)
		store.EXPECT().Load().Return(nil, false, nil)
		store.EXPECT().Save(gomock.Any()).Return(nil)

		rng := rand.New(rand.NewSource(42))
		got, err := New(store, rng, gofakeit.NewCustom(rng)).Obtain(20)
		assert.NoError(t, err)
		return got
	}

	assert.Equal(t, run(), run(), "same seed must reproduce the same verticals")
}
