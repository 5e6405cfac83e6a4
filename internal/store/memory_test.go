package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

type fakeRevealer struct {
	closed int
}

func (f *fakeRevealer) Advance()                  {}
func (f *fakeRevealer) Initialize()               {}
func (f *fakeRevealer) Snapshot() models.Snapshot { return models.Snapshot{} }
func (f *fakeRevealer) Close()                    { f.closed++ }

func TestShowStoreSetGetDelete(t *testing.T) {
	s := NewShowStore()
	r := &fakeRevealer{}
	s.Set("ABC123", &models.Show{Code: "ABC123", Reveal: r})

	require.True(t, s.Exists("ABC123"))
	show, ok := s.Get("ABC123")
	require.True(t, ok)
	assert.Equal(t, "ABC123", show.Code)

	s.Delete("ABC123")
	assert.False(t, s.Exists("ABC123"))
	assert.Equal(t, 1, r.closed)

	s.Delete("ABC123")
	assert.Equal(t, 1, r.closed)
}

func TestShowStoreCloseAll(t *testing.T) {
	s := NewShowStore()
	a, b := &fakeRevealer{}, &fakeRevealer{}
	s.Set("BBBBBB", &models.Show{Code: "BBBBBB", Reveal: b})
	s.Set("AAAAAA", &models.Show{Code: "AAAAAA", Reveal: a})
	assert.Equal(t, []string{"AAAAAA", "BBBBBB"}, s.Codes())

	s.CloseAll()
	assert.Empty(t, s.Codes())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}
