package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-orders-service/internal/model"
	"food-orders-service/internal/repository"
)

type fakeStatusRepo struct {
	docs map[string]*model.ServiceStatus
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{docs: map[string]*model.ServiceStatus{}}
}

func (f *fakeStatusRepo) Find(ctx context.Context, kind string) (*model.ServiceStatus, error) {
	st, ok := f.docs[kind]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (f *fakeStatusRepo) Upsert(ctx context.Context, kind string, open bool, message string) error {
	f.docs[kind] = &model.ServiceStatus{ID: kind, Open: open, Message: message, UpdatedAt: time.Now().UTC()}
	return nil
}

func TestStatusSetAndGet(t *testing.T) {
	svc := NewStatusService(newFakeStatusRepo())

	require.NoError(t, svc.Set(context.Background(), KindApp, false, "Zatvoreno zbog praznika"))

	st, err := svc.Get(context.Background(), KindApp)
	require.NoError(t, err)
	assert.False(t, st.Open)
	assert.Equal(t, "Zatvoreno zbog praznika", st.Message)
	assert.False(t, st.UpdatedAt.IsZero())
}

func TestStatusSetDefaultsBlankMessage(t *testing.T) {
	svc := NewStatusService(newFakeStatusRepo())

	require.NoError(t, svc.Set(context.Background(), KindDelivery, false, ""))

	st, err := svc.Get(context.Background(), KindDelivery)
	require.NoError(t, err)
	assert.Equal(t, "Dostava trenutno nije dostupna.", st.Message)
}

func TestStatusUnknownKind(t *testing.T) {
	svc := NewStatusService(newFakeStatusRepo())

	_, err := svc.Get(context.Background(), "kitchen")
	assert.ErrorIs(t, err, ErrUnknownKind)

	err = svc.Set(context.Background(), "kitchen", true, "")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestStatusGetUnset(t *testing.T) {
	svc := NewStatusService(newFakeStatusRepo())
	_, err := svc.Get(context.Background(), KindApp)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
