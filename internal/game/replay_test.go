package game

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGame_Replay(t *testing.T) {
	tests := []struct {
		name     string
		moves    []chess.Move
		wantErr  error
		wantPly  string
		wantTurn chess.Colour
	}{
		{
			name:     "no moves",
			wantTurn: chess.White,
		},
		{
			name:     "scholar's mate",
			moves:    []chess.Move{mv("e2", "e4"), mv("e7", "e5"), mv("f1", "c4"), mv("b8", "c6"), mv("d1", "h5"), mv("g8", "f6"), mv("h5", "f7")},
			wantTurn: chess.Black,
		},
		{
			name:     "illegal third ply",
			moves:    []chess.Move{mv("e2", "e4"), mv("e7", "e5"), mv("e4", "e5")},
			wantErr:  chesserrors.ErrNotInLegalSet,
			wantPly:  "ply 3",
			wantTurn: chess.White,
		},
		{
			name:     "same side twice",
			moves:    []chess.Move{mv("e2", "e4"), mv("d2", "d4")},
			wantErr:  chesserrors.ErrNotCallersTurn,
			wantPly:  "ply 2",
			wantTurn: chess.White,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame(quietConfig())
			err := g.Replay(tt.moves)

			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
			} else {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				testutil.AssertContains(t, err.Error(), tt.wantPly)
				var moveErr *chesserrors.MoveError
				if !errors.As(err, &moveErr) {
					t.Fatalf("error %v does not wrap a *MoveError", err)
				}
				if !g.Board().Equal(chess.NewInitialBoard()) {
					t.Errorf("failed replay changed the board:\n%s", g.Board())
				}
			}
			testutil.AssertEqual(t, g.Turn(), tt.wantTurn)
		})
	}
}

func TestGame_ReplayToCheckmate(t *testing.T) {
	g := NewGame(quietConfig())
	err := g.Replay([]chess.Move{
		mv("e2", "e4"), mv("e7", "e5"), mv("f1", "c4"), mv("b8", "c6"),
		mv("d1", "h5"), mv("g8", "f6"), mv("h5", "f7"),
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), engine.Checkmate)
}
