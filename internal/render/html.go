package render

import (
	htmlpkg "html"
	"net/url"
	"strconv"
	"strings"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
)

// Cell colours
const (
	ColorHidden = "#D2042D"
	ColorBlack  = "#000000"
	ColorWhite  = "#F2F2F2"
)

// CellColor returns the display colour of a participant
func CellColor(p models.Participant) string {
	if !p.Revealed {
		return ColorHidden
	}
	if p.Choice == models.Black {
		return ColorBlack
	}
	return ColorWhite
}

// cellClass returns the CSS class of a participant cell
func cellClass(p models.Participant) string {
	if !p.Revealed {
		return "cell cell-hidden"
	}
	if p.Choice == models.Black {
		return "cell cell-black"
	}
	return "cell cell-white"
}

// Grid generates HTML for the participant grid (inner content only for sse-swap)
func Grid(snap models.Snapshot) string {
	var b strings.Builder
	b.WriteString(`<div class="guests">`)
	for row := range game.GridRows {
		b.WriteString(`<div class="guest-row">`)
		for col := range game.GridCols {
			i := game.Position{Row: row, Col: col}.Index()
			if i >= len(snap.Participants) {
				break
			}
			p := snap.Participants[i]
			b.WriteString(`<span class="`)
			b.WriteString(cellClass(p))
			if game.IsJudge(i) {
				b.WriteString(` cell-judge`)
			}
			b.WriteString(`" style="background-color:`)
			b.WriteString(CellColor(p))
			b.WriteString(`"></span>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Message generates HTML for the status line above the grid
func Message(snap models.Snapshot) string {
	var b strings.Builder
	b.WriteString(`<p class="message">`)
	b.WriteString(htmlpkg.EscapeString(snap.Message))
	b.WriteString(`</p>`)
	return b.String()
}

// Controls generates HTML for the show controls. Only the host can advance,
// deal a fresh roster or close the show.
func Controls(show *models.Show, viewerID string) string {
	if show.Host != viewerID {
		return `<p class="text-muted">호스트가 다음 단계를 공개할 때까지 기다려 주세요</p>`
	}
	var b strings.Builder
	b.WriteString(`<div class="button-stack"><form hx-post="/advance/`)
	b.WriteString(show.Code)
	b.WriteString(`" hx-swap="none"><button type="submit" class="btn btn-primary">다음 단계 공개</button></form><form hx-post="/reset/`)
	b.WriteString(show.Code)
	b.WriteString(`" hx-swap="none"><button type="submit" class="btn btn-secondary">새 판</button></form><form hx-post="/close-show/`)
	b.WriteString(show.Code)
	b.WriteString(`"><button type="submit" class="btn btn-secondary">쇼 닫기</button></form></div>`)
	return b.String()
}

// ViewerCount generates HTML for the number of people watching
func ViewerCount(count int) string {
	var b strings.Builder
	b.WriteString(`<p class="viewer-count">`)
	b.WriteString(strconv.Itoa(count))
	b.WriteString(`명 시청 중</p>`)
	return b.String()
}

// RedirectSnippet returns an HTMX snippet that triggers a client-side redirect
func RedirectSnippet(to string) string {
	var b strings.Builder
	b.WriteString(`<div hx-get="/redirect?to=`)
	b.WriteString(url.QueryEscape(to))
	b.WriteString(`" hx-trigger="load" hx-swap="none"></div>`)
	return b.String()
}
