// Package cli implements the interactive terminal frontend: public
// profile viewing plus the authenticated admin surface for editing
// profile data and links.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dfalcao/linkbio/internal/client"
	"github.com/dfalcao/linkbio/internal/domain"
	"github.com/dfalcao/linkbio/internal/service"
	"github.com/dfalcao/linkbio/pkg/validator"
)

type App struct {
	api     *client.API
	store   *client.SessionStore
	session *client.Session

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(api *client.API, store *client.SessionStore, in io.Reader, out io.Writer) *App {
	return &App{
		api:    api,
		store:  store,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Restore loads a previously persisted session, if any, and attaches
// its token to outgoing requests. Presence of a session says nothing
// about its validity; an expired token fails on the first API call.
func (a *App) Restore() error {
	session, err := a.store.Load()
	if err != nil {
		return err
	}
	if session != nil {
		a.session = session
		a.api.SetToken(session.Token)
	}
	return nil
}

func (a *App) prompt() string {
	if a.session != nil {
		return fmt.Sprintf("linkbio (%s)> ", a.session.Email)
	}
	return "linkbio> "
}

// Run is the command loop.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "linkbio CLI (type 'help' for commands)")

	if err := a.Restore(); err != nil {
		fmt.Fprintf(a.out, "warning: could not restore session: %v\n", err)
	}

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]
		if cmd == "exit" || cmd == "quit" {
			return nil
		}
		a.Dispatch(ctx, cmd, args)
	}
}

// Dispatch runs a single command. Errors are printed, not returned:
// a failed command never ends the session.
func (a *App) Dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.Help()
	case "register":
		a.Register(ctx)
	case "login":
		a.Login(ctx)
	case "logout":
		a.Logout()
	case "whoami":
		a.Whoami()
	case "view":
		a.View(ctx, args)
	case "profile":
		a.Profile(ctx, args)
	case "links":
		a.Links(ctx)
	case "add":
		a.AddLink(ctx)
	case "edit":
		a.EditLink(ctx, args)
	case "delete":
		a.DeleteLink(ctx, args)
	default:
		fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
	}
}

func (a *App) Help() {
	fmt.Fprint(a.out, `commands:
  register          create an account
  login             sign in and persist the session
  logout            clear the stored session
  whoami            show the current session identity
  view <user-id>    show anyone's public page
  profile           show your profile and links
  profile edit      edit display name, bio and avatar
  links             list your links
  add               add a link
  edit <link-id>    edit a link
  delete <link-id>  delete a link
  exit              quit
`)
}

func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if errs := validator.ValidateRegister(email, password); errs.HasErrors() {
		a.printValidation(errs)
		return
	}

	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "registration failed: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "registered %s (user %d), now run 'login'\n", user.Email, user.ID)
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "login failed: %v\n", err)
		return
	}

	session := &client.Session{Token: resp.Token, UserID: resp.UserID, Email: resp.Email}
	if err := a.store.Save(session); err != nil {
		fmt.Fprintf(a.out, "warning: session not persisted: %v\n", err)
	}

	a.session = session
	a.api.SetToken(session.Token)
	fmt.Fprintf(a.out, "logged in as %s\n", session.Email)
}

func (a *App) Logout() {
	if err := a.store.Clear(); err != nil {
		fmt.Fprintf(a.out, "warning: %v\n", err)
	}
	a.session = nil
	a.api.SetToken("")
	fmt.Fprintln(a.out, "logged out")
}

func (a *App) Whoami() {
	if a.session == nil {
		fmt.Fprintln(a.out, "not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (user %d)\n", a.session.Email, a.session.UserID)
}

// View shows the public page of the user id given as argument. It is
// deliberately addressed by id, not by the local session.
func (a *App) View(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: view <user-id>")
		return
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "usage: view <user-id>")
		return
	}

	page, err := a.api.PublicPage(ctx, userID)
	if err != nil {
		fmt.Fprintf(a.out, "could not load page: %v\n", err)
		return
	}
	a.printPage(page)
}

func (a *App) Profile(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}

	if len(args) == 1 && args[0] == "edit" {
		a.editProfile(ctx)
		return
	}

	page, err := a.api.GetProfile(ctx, a.session.UserID)
	if err != nil {
		a.printAPIError(err, "could not load profile (run 'profile edit' to create one)")
		return
	}
	a.printPage(page)
}

func (a *App) editProfile(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	bio, err := GetSimpleText(a.reader, "Bio", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	avatar, err := GetSimpleText(a.reader, "Avatar URL (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if errs := validator.ValidateProfile(name, avatar); errs.HasErrors() {
		a.printValidation(errs)
		return
	}

	input := service.UpsertProfileInput{Name: name, Bio: bio, AvatarURL: avatar}
	profile, err := a.api.PutProfile(ctx, a.session.UserID, input)
	if err != nil {
		a.printAPIError(err, "could not save profile")
		return
	}
	fmt.Fprintf(a.out, "saved profile for %s\n", profile.Name)
}

func (a *App) Links(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	links, err := a.api.ListLinks(ctx, a.session.UserID)
	if err != nil {
		a.printAPIError(err, "could not load links")
		return
	}
	if len(links) == 0 {
		fmt.Fprintln(a.out, "no links yet, run 'add'")
		return
	}
	for _, l := range links {
		a.printLink(&l)
	}
}

func (a *App) AddLink(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	input, ok := a.readLinkInput()
	if !ok {
		return
	}

	link, err := a.api.CreateLink(ctx, a.session.UserID, input)
	if err != nil {
		a.printAPIError(err, "could not add link")
		return
	}
	fmt.Fprintf(a.out, "added link %d\n", link.ID)
}

func (a *App) EditLink(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	linkID, ok := parseLinkID(args)
	if !ok {
		fmt.Fprintln(a.out, "usage: edit <link-id>")
		return
	}

	input, ok := a.readLinkInput()
	if !ok {
		return
	}

	link, err := a.api.UpdateLink(ctx, a.session.UserID, linkID, input)
	if err != nil {
		a.printAPIError(err, "could not update link")
		return
	}
	fmt.Fprintf(a.out, "updated link %d\n", link.ID)
}

func (a *App) DeleteLink(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}
	linkID, ok := parseLinkID(args)
	if !ok {
		fmt.Fprintln(a.out, "usage: delete <link-id>")
		return
	}

	if err := a.api.DeleteLink(ctx, a.session.UserID, linkID); err != nil {
		a.printAPIError(err, "could not delete link")
		return
	}
	fmt.Fprintf(a.out, "deleted link %d\n", linkID)
}

func (a *App) readLinkInput() (service.LinkInput, bool) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return service.LinkInput{}, false
	}
	url, err := GetSimpleText(a.reader, "URL", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return service.LinkInput{}, false
	}
	platform, err := GetSimpleText(a.reader, "Platform (github, x, instagram, ...)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return service.LinkInput{}, false
	}

	if errs := validator.ValidateLink(title, url); errs.HasErrors() {
		a.printValidation(errs)
		return service.LinkInput{}, false
	}

	return service.LinkInput{Title: title, URL: url, Platform: platform}, true
}

func (a *App) requireSession() bool {
	if a.session == nil {
		fmt.Fprintln(a.out, "not logged in, run 'login' first")
		return false
	}
	return true
}

func (a *App) printAPIError(err error, fallback string) {
	if client.IsAuthError(err) {
		fmt.Fprintln(a.out, "session is no longer valid, run 'login' again")
		return
	}
	fmt.Fprintf(a.out, "%s: %v\n", fallback, err)
}

func (a *App) printValidation(errs validator.ValidationErrors) {
	for field, msg := range errs {
		fmt.Fprintf(a.out, "%s: %s\n", field, msg)
	}
}

func (a *App) printPage(page *domain.ProfilePage) {
	fmt.Fprintf(a.out, "%s\n", page.Profile.Name)
	if page.Profile.Bio != "" {
		fmt.Fprintf(a.out, "%s\n", page.Profile.Bio)
	}
	if page.Profile.AvatarURL != "" {
		fmt.Fprintf(a.out, "avatar: %s\n", page.Profile.AvatarURL)
	}
	if len(page.Links) == 0 {
		fmt.Fprintln(a.out, "(no links)")
		return
	}
	for _, l := range page.Links {
		a.printLink(&l)
	}
}

func (a *App) printLink(l *domain.Link) {
	platform := l.Platform
	if platform == "" {
		platform = "web"
	}
	fmt.Fprintf(a.out, "  [%d] %s (%s) %s\n", l.ID, l.Title, platform, l.URL)
}

func parseLinkID(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
