package api

import (
	"html/template"

	"github.com/gmkornilov/chess-board-backend/pkg/chessboard"
)

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
	<title>Chess</title>
	<style>
		table.board { border-collapse: collapse; }
		table.board td { width: 50px; height: 50px; text-align: center; border: 1px solid #000; }
		td.light { background-color: #eee; color: #000; }
		td.dark { background-color: #333; color: #fff; }
	</style>
</head>
<body>
	<h1>Chess</h1>
	<form action="/move" method="post">
		<input type="text" name="move_notation" placeholder="Enter move (e.g., e2e4)" required>
		<button type="submit">Make Move</button>
	</form>
	<table class="board">
	{{range .Rows}}<tr>
		{{range .}}<td id="{{.Square}}" class="{{.Shade}}">{{.Symbol}}</td>
		{{end}}</tr>
	{{end}}</table>
	<p>Ply {{.Ply}}</p>
</body>
</html>`

var pageTemplate = template.Must(template.New("index").Parse(indexTemplate))

type cell struct {
	Square string
	Symbol string
	Shade  string
}

type page struct {
	Rows [][]cell
	Ply  int
}

// boardRows lays the board out for drawing, rank 8 at the top.
func boardRows(b *chessboard.Board) [][]cell {
	rows := make([][]cell, chessboard.Size)
	b.Each(func(c chessboard.Coordinate, sq chessboard.Square) {
		cl := cell{Square: c.String(), Shade: "light"}
		if (c.File+c.Rank)%2 != 0 {
			cl.Shade = "dark"
		}
		if sq.Occupied {
			cl.Symbol = sq.Piece.Symbol()
		}
		rows[c.Rank] = append(rows[c.Rank], cl)
	})
	return rows
}

// symbols returns the rendering symbol of every square, "" for empty ones.
func symbols(b *chessboard.Board) [][]string {
	out := make([][]string, chessboard.Size)
	b.Each(func(c chessboard.Coordinate, sq chessboard.Square) {
		s := ""
		if sq.Occupied {
			s = sq.Piece.Symbol()
		}
		out[c.Rank] = append(out[c.Rank], s)
	})
	return out
}
