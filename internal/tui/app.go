// Package tui is the terminal front end: a lobby menu, the board with player
// plates and move list, and the comment panel.
package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vytor/chessroyale/internal/board"
	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/lobby"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/worker"
)

const (
	pageMenu    = "menu"
	pageWaiting = "waiting"
	pageJoin    = "join"
	pageGame    = "game"
	pageComment = "comment"
)

// App wires a lobby session, the board view and the comment panel. Storage
// calls run on pool; their results are applied on the UI goroutine.
type App struct {
	app   *tview.Application
	pages *tview.Pages
	log   *logger.Logger

	session *lobby.Session
	store   worker.AnnotationStore
	pool    *worker.Pool

	board    *BoardView
	info     *tview.TextView
	comments *tview.TextView
	hint     *tview.TextView
	waiting  *tview.Modal

	// code mirrors the session's game code; the observer runs under the
	// session lock and must not call back into it.
	code string
	last board.View
}

func New(store worker.AnnotationStore, pool *worker.Pool) *App {
	a := &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		log:   logger.Default().WithPrefix("tui"),
		store: store,
		pool:  pool,
	}
	a.session = lobby.NewSession("local", board.WithObserver(a.onBoard))

	a.board = NewBoardView()
	a.info = tview.NewTextView().SetDynamicColors(true)
	a.info.SetBorder(true).SetTitle(" Game ").SetTitleAlign(tview.AlignLeft)
	a.comments = tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)
	a.comments.SetBorder(true).SetTitle(" Comments ").SetTitleAlign(tview.AlignLeft)
	a.hint = tview.NewTextView().SetDynamicColors(true)
	a.hint.SetBorder(true).SetBorderPadding(0, 0, 1, 1).SetTitle(" Status ").SetTitleAlign(tview.AlignLeft)

	a.pages.SetBorder(true).SetTitle(" ♛ Chess Royale ")
	a.pages.AddPage(pageMenu, a.menuPage(), true, true)
	a.pages.AddPage(pageJoin, a.joinPage(), true, false)
	a.waiting = tview.NewModal()
	a.pages.AddPage(pageWaiting, a.waiting, true, false)
	a.pages.AddPage(pageGame, a.gamePage(), true, false)

	a.app.SetRoot(a.pages, true)
	return a
}

// Run blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) menuPage() tview.Primitive {
	list := tview.NewList().ShowSecondaryText(true)
	list.AddItem("Create New Game", "Get a code to share with your opponent", 'c', a.createGame)
	list.AddItem("Join Existing Game", "Enter the code you were given", 'j', func() {
		a.pages.SwitchToPage(pageJoin)
	})
	list.AddItem("Quit", "", 'q', a.app.Stop)
	list.SetBorder(true).SetTitle(" Menu ")
	return centered(list, 50, 10)
}

func (a *App) createGame() {
	view, err := a.session.CreateGame()
	if err != nil {
		a.showError(err)
		return
	}
	a.code = view.GameCode
	a.waiting.ClearButtons()
	a.waiting.SetText("Game code: " + view.GameCode + "\n\nShare this code with your opponent.").
		AddButtons([]string{"Start Game", "Back"}).
		SetDoneFunc(func(_ int, label string) {
			if label != "Start Game" {
				a.pages.SwitchToPage(pageMenu)
				return
			}
			if _, err := a.session.StartGame(); err != nil {
				a.showError(err)
				return
			}
			a.enterGame()
		})
	a.pages.SwitchToPage(pageWaiting)
}

func (a *App) joinPage() tview.Primitive {
	var code string
	form := tview.NewForm()
	form.AddInputField("Game code", "", 10, nil, func(text string) { code = text })
	form.AddButton("Join", func() {
		view, err := a.session.JoinGame(code)
		if err != nil {
			a.showError(err)
			return
		}
		a.code = view.GameCode
		a.enterGame()
	})
	form.AddButton("Back", func() { a.pages.SwitchToPage(pageMenu) })
	form.SetCancelFunc(func() { a.pages.SwitchToPage(pageMenu) })
	form.SetBorder(true).SetTitle(" Join Game ")
	return centered(form, 40, 9)
}

func (a *App) gamePage() tview.Primitive {
	top := tview.NewTextView().SetDynamicColors(true).SetText(formatPlayer(topPlayer))
	bottom := tview.NewTextView().SetDynamicColors(true).SetText(formatPlayer(bottomPlayer))

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, false).
		AddItem(a.board.Box, 10, 0, true).
		AddItem(bottom, 1, 0, false).
		AddItem(a.hint, 3, 0, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.info, 0, 1, false).
		AddItem(a.comments, 0, 1, false)

	a.board.Box.SetInputCapture(a.onKey)

	return tview.NewFlex().
		AddItem(left, 30, 0, true).
		AddItem(right, 0, 1, false)
}

func (a *App) onKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.board.MoveCursor(-1, 0)
	case tcell.KeyDown:
		a.board.MoveCursor(1, 0)
	case tcell.KeyLeft:
		a.board.MoveCursor(0, -1)
	case tcell.KeyRight:
		a.board.MoveCursor(0, 1)
	case tcell.KeyEnter:
		a.activate()
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			a.activate()
		case 'h':
			a.board.MoveCursor(0, -1)
		case 'j':
			a.board.MoveCursor(1, 0)
		case 'k':
			a.board.MoveCursor(-1, 0)
		case 'l':
			a.board.MoveCursor(0, 1)
		case 'r':
			if _, err := a.session.Reset(); err != nil {
				a.showError(err)
			}
		case 'c':
			a.openCommentForm()
		case 'q':
			if a.last.Selected != nil {
				// activating the selected square again clears it
				if _, err := a.session.Activate(a.last.Selected.Row, a.last.Selected.Col); err != nil {
					a.showError(err)
				}
				return nil
			}
			a.pages.SwitchToPage(pageMenu)
		}
	default:
		return event
	}
	return nil
}

func (a *App) activate() {
	row, col := a.board.Cursor()
	if _, err := a.session.Activate(row, col); err != nil {
		a.showError(err)
	}
}

// onBoard is the controller observer. It runs on the UI goroutine.
func (a *App) onBoard(v board.View) {
	a.last = v
	a.board.SetView(v)
	a.info.SetText(formatInfo(v, a.code))
	a.hint.SetText(tview.Escape(v.Status) + "  [dimgray]arrows move · enter select · c comment · r reset · q back[-]")
}

func (a *App) enterGame() {
	a.onBoard(a.session.Board())
	a.pages.SwitchToPage(pageGame)
	a.app.SetFocus(a.board.Box)
	a.refreshComments()
}

func (a *App) gameID() string {
	return a.code
}

func (a *App) refreshComments() {
	a.comments.SetText("[dimgray]Loading…[-]")
	a.pool.Submit(&worker.RefreshCommentsJob{
		Store:  a.store,
		GameID: a.gameID(),
		Done: func(res worker.CommentList) {
			a.app.QueueUpdateDraw(func() { a.showComments(res) })
		},
	})
}

func (a *App) showComments(res worker.CommentList) {
	if res.Err != nil {
		a.comments.SetText("[red]" + tview.Escape(errors.As(res.Err).Message) + "[-]")
		return
	}
	a.comments.SetText(formatComments(res.Comments, res.Stats))
	a.comments.ScrollToBeginning()
}

func (a *App) openCommentForm() {
	fields := commentFields{MoveNumber: strconv.Itoa(a.session.FullMoveNumber())}

	sides := []string{"(none)"}
	for _, o := range models.PlayerSides {
		sides = append(sides, o.Label)
	}
	ideas := []string{"(none)"}
	for _, o := range models.TacticalIdeas {
		ideas = append(ideas, o.Label)
	}
	ratings := []string{"(none)"}
	for r := models.MinRating; r <= models.MaxRating; r++ {
		ratings = append(ratings, strconv.Itoa(r))
	}

	form := tview.NewForm()
	form.AddTextArea("Comment", "", 50, 4, 0, func(text string) { fields.Comment = text })
	form.AddInputField("Move number", fields.MoveNumber, 6, tview.InputFieldInteger, func(text string) { fields.MoveNumber = text })
	form.AddDropDown("Rating", ratings, 0, func(option string, index int) {
		fields.Rating = ""
		if index > 0 {
			fields.Rating = option
		}
	})
	form.AddDropDown("Side", sides, 0, func(_ string, index int) {
		fields.PlayerSide = ""
		if index > 0 {
			fields.PlayerSide = models.PlayerSides[index-1].Value
		}
	})
	form.AddDropDown("Tactical idea", ideas, 0, func(_ string, index int) {
		fields.TacticalIdea = ""
		if index > 0 {
			fields.TacticalIdea = models.TacticalIdeas[index-1].Value
		}
	})
	form.AddInputField("Evaluation", "", 10, nil, func(text string) { fields.Evaluation = text })
	form.AddInputField("Time spent (s)", "", 6, tview.InputFieldInteger, func(text string) { fields.TimeSpent = text })
	form.AddInputField("Alternative", "", 20, nil, func(text string) { fields.Alternative = text })

	closeForm := func() {
		a.pages.RemovePage(pageComment)
		a.app.SetFocus(a.board.Box)
	}
	form.AddButton("Save", func() {
		input, err := fields.toInput(a.gameID(), a.last.FEN)
		if err != nil {
			a.showError(err)
			return
		}
		closeForm()
		a.submitComment(input)
	})
	form.AddButton("Cancel", closeForm)
	form.SetCancelFunc(closeForm)
	form.SetBorder(true).SetTitle(" Add Comment ")

	a.pages.AddPage(pageComment, centered(form, 70, 22), true, true)
}

func (a *App) submitComment(input models.CommentInput) {
	a.comments.SetText("[dimgray]Saving…[-]")
	a.pool.Submit(&worker.AddCommentJob{
		Store:  a.store,
		Input:  input,
		GameID: a.gameID(),
		Done: func(created *models.Comment, list worker.CommentList, err error) {
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					a.log.Warn("comment not saved: %v", err)
					a.showComments(worker.CommentList{Err: err})
					return
				}
				a.log.Debug("comment saved: id=%d", created.ID)
				a.showComments(list)
			})
		},
	})
}

func (a *App) showError(err error) {
	const page = "error"
	modal := tview.NewModal().
		SetText(errors.As(err).Message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			a.pages.RemovePage(page)
		})
	a.pages.AddPage(page, modal, true, true)
}

// centered wraps p in a fixed-size box in the middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
