package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectionBeforeConnect(t *testing.T) {
	s := New("mongodb://localhost:27017", "clients_db", time.Second)
	_, err := s.Collection("clients")
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestPingBeforeConnect(t *testing.T) {
	s := New("mongodb://localhost:27017", "clients_db", time.Second)
	require.ErrorIs(t, s.Ping(context.Background()), ErrNotConnected)
}

func TestCloseIsIdempotentWithoutConnection(t *testing.T) {
	s := New("mongodb://localhost:27017", "clients_db", time.Second)
	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))
}
