package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

//go:embed templates/game.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("game.html").Funcs(template.FuncMap{
	"mark": func(cell entity.Cell) string {
		if cell == entity.CellEmpty {
			return ""
		}

		return cell.String()
	},
}).ParseFS(templatesFS, "templates/game.html"))

type pageData struct {
	State entity.GameState
	Modes []entity.GameMode
}

func renderPage(w http.ResponseWriter, state entity.GameState) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{
		State: state,
		Modes: []entity.GameMode{entity.PlayerVsComputer, entity.PlayerVsPlayer},
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	return nil
}
