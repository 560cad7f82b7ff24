package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lasker/game"

	"github.com/stretchr/testify/require"
)

func replyWith(t *testing.T, text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`, text)
	}
}

func TestRemotePropose(t *testing.T) {
	view := NewView(game.New(), game.Blue)

	t.Run("sends the instruction and returns the move", func(t *testing.T) {
		var got generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/models/test-model:generateContent", r.URL.Path)
			require.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"h1 d2 r0\n"}]}}]}`)
		}))
		defer srv.Close()

		move, err := NewRemote(srv.URL+"/", "test-model", "secret", time.Second).Propose(context.Background(), view)

		require.NoError(t, err)
		require.Equal(t, "h1 d2 r0", move)
		require.Contains(t, got.SystemInstruction.Parts[0].Text, "You play blue")
		require.Len(t, got.Contents, 1)
		require.Equal(t, "user", got.Contents[0].Role)
	})

	t.Run("strips code fences", func(t *testing.T) {
		srv := httptest.NewServer(replyWith(t, "```\nh1 a7 r0\n```"))
		defer srv.Close()

		move, err := NewRemote(srv.URL, "m", "k", time.Second).Propose(context.Background(), view)
		require.NoError(t, err)
		require.Equal(t, "h1 a7 r0", move)
	})

	t.Run("no valid move", func(t *testing.T) {
		srv := httptest.NewServer(replyWith(t, "No valid move."))
		defer srv.Close()

		_, err := NewRemote(srv.URL, "m", "k", time.Second).Propose(context.Background(), view)
		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("empty reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer srv.Close()

		_, err := NewRemote(srv.URL, "m", "k", time.Second).Propose(context.Background(), view)
		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewRemote(srv.URL, "m", "k", time.Second).Propose(context.Background(), view)
		require.ErrorContains(t, err, "status 429")
		require.NotErrorIs(t, err, ErrNoMove)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		_, err := NewRemote(srv.URL, "m", "k", 50*time.Millisecond).Propose(context.Background(), view)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestExtractMove(t *testing.T) {
	cases := []struct {
		reply string
		want  string
	}{
		{reply: "h1 d2 r0", want: "h1 d2 r0"},
		{reply: "  `a7 a4 r0`  ", want: "a7 a4 r0"},
		{reply: "\n\n\"g1 g4 b4\"\n", want: "g1 g4 b4"},
		{reply: "```text\nd2 d3 r0\n```", want: "d2 d3 r0"},
	}
	for _, c := range cases {
		got, err := extractMove(c.reply)
		require.NoError(t, err, c.reply)
		require.Equal(t, c.want, got)
	}
}
