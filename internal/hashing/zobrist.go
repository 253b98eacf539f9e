// Package hashing provides Zobrist position keys and a cache of perft node
// counts keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed is fixed so keys are the same from run to run.
const zobristSeed = 0xC0DE

var (
	pieceKeys [chess.NumTeams][chess.NumKinds][chess.NumSquares]uint64
	blackKey  uint64 // XORed in when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	r := rand.New(rand.NewSource(zobristSeed))
	for team := chess.White; team < chess.NumTeams; team++ {
		for kind := chess.King; kind < chess.NumKinds; kind++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				pieceKeys[team][kind][sq] = r.Uint64()
			}
		}
	}
	blackKey = r.Uint64()
}

// PieceKey returns the key contribution of piece standing on sq, or 0 for an
// empty square.
func PieceKey(piece chess.Piece, sq chess.Square) uint64 {
	if piece.IsEmpty() {
		return 0
	}
	return pieceKeys[piece.Team][piece.Kind][sq.Index()]
}

// Key returns the Zobrist key of board with turn to move.
func Key(board *chess.Board, turn chess.Team) uint64 {
	var key uint64
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareAt(i)
		key ^= PieceKey(board.Get(sq), sq)
	}
	if turn == chess.Black {
		key ^= blackKey
	}
	return key
}
