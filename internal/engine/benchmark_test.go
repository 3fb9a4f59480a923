package engine

import "testing"

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range oracleFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range oracleFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.FEN()
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range oracleFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.LegalMoves()
			}
		})
	}
}

func BenchmarkIsGameOver(b *testing.B) {
	board, _ := NewBoardFromFEN(oracleFENs["Kiwipete"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.meta.Status = 0
		board.IsGameOver()
	}
}
