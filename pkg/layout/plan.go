package layout

import "github.com/codeclub/cccards/pkg/cards"

// Grid dimensions. The page grid is fixed at 4 columns by 7 rows;
// arbitrary grid sizes are deliberately unsupported.
const (
	GridCols = 4
	GridRows = 7

	// CardsPerPage is the cell count of one page.
	CardsPerPage = GridCols * GridRows
)

// Side identifies which face of a sheet a page prints on.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Page is one drawing surface: a fixed 4x7 grid of cells. A nil cell is
// empty (the deck did not fill the last page).
type Page struct {
	// Side is the sheet face this page prints on.
	Side Side

	// Number is the 1-based sheet number. A front page and its back page
	// share the same number.
	Number int

	// Cells holds the card at each (row, col) grid position.
	Cells [GridRows][GridCols]*cards.Instance
}

// FilledCells returns the number of populated cells on the page.
func (p *Page) FilledCells() int {
	n := 0
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if p.Cells[r][c] != nil {
				n++
			}
		}
	}
	return n
}

// Plan is the ordered sequence of pages to emit, in final print order.
// Double-sided plans interleave front and back pages (front 1, back 1,
// front 2, back 2, ...) so sequential duplex printing produces correctly
// paired sheets.
type Plan []Page

// PageRenderer is the drawing surface contract consumed by a Plan.
// The renderer owns fonts, styling, and file writing; the plan only decides
// what goes where.
type PageRenderer interface {
	// StartPage begins a new drawing surface.
	StartPage()

	// DrawCard draws one card at the given grid position.
	DrawCard(row, col int, card cards.Instance)
}

// BuildPlan partitions a balanced deck pair into pages.
//
// The front deck is split into consecutive 28-card chunks in original
// order, one chunk per sheet; only the last page may be partially filled.
// If a back deck exists it is split identically by index, then each back
// page's columns are reversed (column c becomes GridCols-1-c) so that when
// the printed sheet is flipped along its vertical edge, every back cell
// lands behind its corresponding front cell. The mirror transform lives
// here and only here; the renderer sees plain grid coordinates.
//
// An empty balanced deck produces a zero-page plan, which is valid output.
func BuildPlan(pair Pair) Plan {
	sheets := (len(pair.Front) + CardsPerPage - 1) / CardsPerPage

	plan := make(Plan, 0, 2*sheets)
	for sheet := 0; sheet < sheets; sheet++ {
		front := buildPage(pair.Front, sheet, SideFront)
		plan = append(plan, front)

		if pair.DoubleSided() {
			back := buildPage(pair.Back, sheet, SideBack)
			mirrorColumns(&back)
			plan = append(plan, back)
		}
	}
	return plan
}

// buildPage fills one page from the deck chunk starting at sheet*CardsPerPage.
// Cells are filled row-major, matching the deck order.
func buildPage(deck cards.Deck, sheet int, side Side) Page {
	page := Page{Side: side, Number: sheet + 1}

	start := sheet * CardsPerPage
	for i := 0; i < CardsPerPage && start+i < len(deck); i++ {
		card := deck[start+i]
		page.Cells[i/GridCols][i%GridCols] = &card
	}
	return page
}

// mirrorColumns reverses the column order of every row in place.
// Applying it twice restores the original order.
func mirrorColumns(page *Page) {
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols/2; c++ {
			page.Cells[r][c], page.Cells[r][GridCols-1-c] = page.Cells[r][GridCols-1-c], page.Cells[r][c]
		}
	}
}

// Render walks the plan in print order, starting one renderer page per
// planned page and drawing every populated cell.
func (plan Plan) Render(r PageRenderer) {
	for _, page := range plan {
		r.StartPage()
		for row := 0; row < GridRows; row++ {
			for col := 0; col < GridCols; col++ {
				if cell := page.Cells[row][col]; cell != nil {
					r.DrawCard(row, col, *cell)
				}
			}
		}
	}
}

// Sheets returns the number of physical sheets in the plan (front pages).
func (plan Plan) Sheets() int {
	n := 0
	for _, page := range plan {
		if page.Side == SideFront {
			n++
		}
	}
	return n
}

// FilledCells returns the total populated cells across all pages.
func (plan Plan) FilledCells() int {
	n := 0
	for i := range plan {
		n += plan[i].FilledCells()
	}
	return n
}
