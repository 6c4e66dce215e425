package relay_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"deaddrop/internal/domain"
	"deaddrop/internal/relay"
	"deaddrop/internal/services/admission"
	"deaddrop/internal/services/messages"
	"deaddrop/internal/services/reassembly"
	"deaddrop/internal/services/registry"
)

const (
	userA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	userB = "abababababababababababababababab"
)

type fixture struct {
	client *relay.Client
	store  *messages.Service
}

// newFixture stands up a full relay over httptest and a typed client
// against it.
func newFixture(t *testing.T, rateLimit int) *fixture {
	t.Helper()

	admitter := admission.New(rateLimit, time.Minute)
	reg := registry.New(100, "s3cret")
	store := messages.New(100, 100000, time.Hour)
	chunks := reassembly.New(store, 100000, 255, 30*time.Minute, 50*time.Millisecond)

	srv := relay.NewServer(admitter, reg, store, chunks, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &fixture{
		client: relay.NewClient(ts.URL, ts.Client()),
		store:  store,
	}
}

func TestRegister_ThenJournalistKeyVisible(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	key, err := f.client.RegisterUser(ctx, userA)
	require.NoError(t, err)
	require.Empty(t, key, "no journalist key before one is claimed")

	require.NoError(t, f.client.RegisterJournalist(ctx, "PUB1", ""))

	key, err = f.client.RegisterUser(ctx, userA)
	require.NoError(t, err)
	require.Equal(t, "PUB1", key)
}

func TestRegister_BadHash_Rejected(t *testing.T) {
	f := newFixture(t, 1000)

	_, err := f.client.RegisterUser(context.Background(), "NOT-HEX")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterJournalist_WrongSecret_KeyUnchanged(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	require.NoError(t, f.client.RegisterJournalist(ctx, "PUB1", ""))

	err := f.client.RegisterJournalist(ctx, "PUB2", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	key, err := f.client.RegisterUser(ctx, userA)
	require.NoError(t, err)
	require.Equal(t, "PUB1", key)
}

func TestSendMessage_RoundTrip(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	id, err := f.client.SendMessage(ctx, domain.Message{
		From:            userA,
		Payload:         "opaque-ciphertext",
		SenderPublicKey: "user-pub",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	mine, err := f.client.FetchMessages(ctx, "user", userA)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, id, mine[0].ID)
	require.Equal(t, "opaque-ciphertext", mine[0].Payload)

	all, err := f.client.FetchMessages(ctx, "journalist", "")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSendMessage_Oversized_NeverStored(t *testing.T) {
	f := newFixture(t, 1000)

	_, err := f.client.SendMessage(context.Background(), domain.Message{
		From:    userA,
		Payload: strings.Repeat("x", 100001),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Equal(t, 0, f.store.Len())
}

func TestSendChunk_OutOfOrder_CompletesFile(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	send := func(index int, data string) (int, int) {
		received, total, err := f.client.SendChunk(ctx, domain.Chunk{
			From:     userA,
			Index:    index,
			Total:    3,
			Data:     data,
			FileName: "a.txt",
		})
		require.NoError(t, err)
		return received, total
	}

	received, total := send(0, "AA")
	require.Equal(t, 1, received)
	require.Equal(t, 3, total)

	received, _ = send(2, "CC")
	require.Equal(t, 2, received)

	received, _ = send(1, "BB")
	require.Equal(t, 3, received)

	mine, err := f.client.FetchMessages(ctx, "user", userA)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.True(t, mine[0].HasFiles)
	require.NotNil(t, mine[0].File)
	require.Equal(t, "AABBCC", mine[0].File.Content)
}

func TestNuke_RemovesEveryTrace(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	_, err := f.client.SendMessage(ctx, domain.Message{From: userA, Payload: "a"})
	require.NoError(t, err)
	_, err = f.client.SendMessage(ctx, domain.Message{From: userB, Payload: "b"})
	require.NoError(t, err)

	require.NoError(t, f.client.Nuke(ctx, userA))

	mine, err := f.client.FetchMessages(ctx, "user", userA)
	require.NoError(t, err)
	require.Empty(t, mine)

	all, err := f.client.FetchMessages(ctx, "journalist", "")
	require.NoError(t, err)
	for _, m := range all {
		require.NotEqual(t, userA, m.From)
	}
	require.Len(t, all, 1)
}

func TestRateLimit_RejectsThenRecovers(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.client.Health(ctx))
	}
	err := f.client.Health(ctx)
	require.ErrorIs(t, err, domain.ErrTooManyRequests)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, 1000)
	require.NoError(t, f.client.Health(context.Background()))
}
